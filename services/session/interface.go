package session

import (
	"context"
	"time"

	sessionRepo "surfbrew/database/repository/session"
	"surfbrew/models"
	"surfbrew/services/booking"
)

// CreateSessionInput carries the operator-supplied fields for a new
// session.
type CreateSessionInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CoachID     string    `json:"coach_id,omitempty"`
	SchoolID    string    `json:"school_id,omitempty"`
	Location    string    `json:"location"`
	Level       string    `json:"level,omitempty"`
	SessionType string    `json:"session_type,omitempty"`
	StartTime   time.Time `json:"start_time"`
	Duration    int       `json:"duration_minutes"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity,omitempty"`
}

// SessionWithAvailability decorates a session with its computed capacity
// snapshot for listings.
type SessionWithAvailability struct {
	models.Session
	Availability models.Availability `json:"availability"`
}

// SessionService manages session records.
type SessionService interface {
	Create(ctx context.Context, input CreateSessionInput) (*models.Session, error)
	Search(ctx context.Context, filter sessionRepo.SearchFilter) ([]SessionWithAvailability, error)
}

// DefaultSessionService implements SessionService.
type DefaultSessionService struct {
	Repo     sessionRepo.SessionRepository
	Bookings booking.BookingService
}
