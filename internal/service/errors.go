package service

import (
	"errors"
	"fmt"

	"github.com/popeskul/clinic-channel-gateway/internal/models"
)

var (
	// ErrChannelNotFound is returned when a referenced channel does not exist.
	ErrChannelNotFound = errors.New("channel not found")

	// ErrNoChannelAvailable is the rotator's normal "nothing eligible"
	// outcome; callers branch on it, it is never an infrastructure failure.
	ErrNoChannelAvailable = errors.New("no channel available")

	// ErrChannelUnavailable is returned when a send targets a channel
	// that is not active.
	ErrChannelUnavailable = errors.New("channel is not active")

	// ErrUnknownMessage is returned for delivery callbacks referencing
	// an external id no log entry carries.
	ErrUnknownMessage = errors.New("unknown external message id")

	// ErrInvalidConfig is returned for malformed channel or antiblock
	// configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// RateLimitError reports a send refused by the anti-block policy, with
// the first matching deny reason.
type RateLimitError struct {
	Reason models.DenyReason
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("send not allowed: %s", e.Reason)
}
