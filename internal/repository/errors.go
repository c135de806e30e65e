package repository

import "errors"

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is returned when a message status update
	// would leave a terminal state or move backward.
	ErrInvalidTransition = errors.New("invalid status transition")
)
