package domain

import "errors"

var (
	// ErrNotFound is returned when a message id was never submitted.
	ErrNotFound = errors.New("message not found")

	// ErrInvalidTransition is returned when a status mutation would violate
	// the message lifecycle state machine.
	ErrInvalidTransition = errors.New("invalid status transition")
)
