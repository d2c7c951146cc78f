package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound signals that a session id did not resolve.
	ErrSessionNotFound = errors.New("session not found")
	// ErrBookingNotFound signals that a booking id did not resolve to a
	// booking in the expected state.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidInput signals a malformed identifier or out-of-range field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStoreUnavailable signals that the backing store failed; callers
	// should retry later rather than treat the request as invalid.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// CapacityError rejects an admission that would exceed the session's
// remaining capacity. It carries the exact remaining count so callers can
// tell requesters how many spots are actually left.
type CapacityError struct {
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("Only %d spot(s) left", e.Available)
}

func invalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

func storeError(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
