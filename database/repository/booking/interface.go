package bookingRepo

import (
	"context"
	"errors"

	"surfbrew/models"
)

// ErrNoCapacity is returned by Admit when the session's capacity guard
// rejects the reservation. The caller distinguishes "session gone" from
// "session full" by re-reading the session.
var ErrNoCapacity = errors.New("insufficient remaining capacity")

// ListFilter narrows a booking listing.
type ListFilter struct {
	Email           string
	SessionID       string
	Status          string
	ExperienceLevel string
	Query           string // matched against requester name/email
	Limit           int64
}

// BookingRepository defines persistence operations for bookings. Admit and
// Cancel also maintain the per-session booked counter; both are
// all-or-nothing.
type BookingRepository interface {
	// Admit atomically reserves units of the session's capacity and
	// inserts the booking. Returns ErrNoCapacity when the guard fails.
	Admit(ctx context.Context, booking *models.Booking, units int) error

	// Cancel transitions a confirmed booking to cancelled and releases its
	// units back to the session. Returns the booking as it was before the
	// transition, or mongo.ErrNoDocuments when no confirmed booking
	// matches.
	Cancel(ctx context.Context, id string) (*models.Booking, error)

	// Attend transitions a confirmed booking to attended. Capacity is not
	// released. Returns mongo.ErrNoDocuments when no confirmed booking
	// matches.
	Attend(ctx context.Context, id string) error

	GetByID(ctx context.Context, id string) (*models.Booking, error)

	// GetActiveBySession returns all non-cancelled bookings for a session.
	GetActiveBySession(ctx context.Context, sessionID string) ([]models.Booking, error)

	List(ctx context.Context, filter ListFilter) ([]models.Booking, error)
}
