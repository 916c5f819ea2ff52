package database

import "errors"

var (
	ErrDuplicateInterest = errors.New("buyer already has an interest on this listing")
	ErrListingSold       = errors.New("listing already has an accepted interest")
	ErrOwnInterest       = errors.New("sellers cannot register interest on their own listing")
)
