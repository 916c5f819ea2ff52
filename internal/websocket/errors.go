package websocket

import "errors"

var (
	ErrInvalidMessage = errors.New("invalid message format")
	ErrNotInRoom      = errors.New("client has not joined the room")
)
