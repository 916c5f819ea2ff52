package database

import (
	"time"

	"github.com/campushub/campus-hub/internal/models"
	"github.com/google/uuid"
)

// Repository is the storage contract the handlers depend on.
type Repository interface {
	SaveUser(user *models.User) error
	GetUser(id string) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)
	UpdateLastSeen(id string) error

	CreateListing(listing *models.Listing) error
	GetListing(id string) (*models.Listing, error)
	ListActiveListings(now time.Time) ([]models.Listing, error)
	DeleteListing(id string) error

	AddInterest(interest *models.Interest) error
	GetInterests(listingID string) ([]models.Interest, error)
	AcceptInterest(listingID, interestID string) error

	GetSlots(userID string) ([]models.Slot, error)
	ReplaceSlots(userID uuid.UUID, slots []models.Slot) ([]models.Slot, error)
}

var _ Repository = (*Database)(nil)
