package booking

import (
	"context"

	bookingRepo "surfbrew/database/repository/booking"
	sessionRepo "surfbrew/database/repository/session"
	"surfbrew/models"
)

// CreateBookingInput carries a booking request from the API boundary.
type CreateBookingInput struct {
	SessionID       string `json:"session_id"`
	UserName        string `json:"user_name"`
	UserEmail       string `json:"user_email"`
	Participants    int    `json:"participants"`
	ExperienceLevel string `json:"experience_level"`
	Notes           string `json:"notes,omitempty"`
}

// BookingService is the availability and admission engine.
type BookingService interface {
	// Availability computes the capacity snapshot for a session from its
	// non-cancelled bookings. Read-only, never cached.
	Availability(ctx context.Context, session *models.Session) (models.Availability, error)

	// Create admits or rejects a booking request. On success exactly one
	// confirmed booking is persisted; on rejection nothing is.
	Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error)

	// Cancel transitions a confirmed booking to cancelled, freeing its
	// capacity.
	Cancel(ctx context.Context, id string) error

	// Attend transitions a confirmed booking to attended. Capacity stays
	// consumed.
	Attend(ctx context.Context, id string) error

	List(ctx context.Context, filter bookingRepo.ListFilter) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService against the document
// store repositories.
type DefaultBookingService struct {
	Sessions sessionRepo.SessionRepository
	Bookings bookingRepo.BookingRepository
}
