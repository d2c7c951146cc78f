package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	sessionRepo "surfbrew/database/repository/session"
	"surfbrew/models"
	"surfbrew/services/booking"
	"surfbrew/utils"
)

// Create validates and persists a new session.
func (s *DefaultSessionService) Create(ctx context.Context, input CreateSessionInput) (*models.Session, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", booking.ErrInvalidInput)
	}
	if input.Location == "" {
		return nil, fmt.Errorf("%w: location is required", booking.ErrInvalidInput)
	}
	if input.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: start_time is required", booking.ErrInvalidInput)
	}
	if input.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration_minutes must be positive", booking.ErrInvalidInput)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", booking.ErrInvalidInput)
	}

	level := input.Level
	if level == "" {
		level = models.LevelAll
	}
	if !models.ValidLevel(level) {
		return nil, fmt.Errorf("%w: unknown level %q", booking.ErrInvalidInput, input.Level)
	}

	sessionType := input.SessionType
	if sessionType == "" {
		sessionType = models.SessionTypeGroup
	}
	if !models.ValidSessionType(sessionType) {
		return nil, fmt.Errorf("%w: unknown session_type %q", booking.ErrInvalidInput, input.SessionType)
	}

	capacity := input.Capacity
	if capacity == 0 {
		capacity = 1
	}
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be at least 1", booking.ErrInvalidInput)
	}

	session := &models.Session{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		CoachID:     input.CoachID,
		SchoolID:    input.SchoolID,
		Location:    input.Location,
		Level:       level,
		SessionType: sessionType,
		StartTime:   input.StartTime.UTC(),
		Duration:    input.Duration,
		Price:       input.Price,
		Capacity:    capacity,
	}

	if err := s.Repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: %v", booking.ErrStoreUnavailable, err)
	}

	utils.GetLogger().Info("session created",
		zap.String("sessionID", session.ID),
		zap.String("title", session.Title),
		zap.Int("capacity", session.Capacity))
	return session, nil
}

// Search lists sessions matching the filter, each decorated with its
// current availability.
func (s *DefaultSessionService) Search(ctx context.Context, filter sessionRepo.SearchFilter) ([]SessionWithAvailability, error) {
	sessions, err := s.Repo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", booking.ErrStoreUnavailable, err)
	}

	results := make([]SessionWithAvailability, 0, len(sessions))
	for i := range sessions {
		avail, err := s.Bookings.Availability(ctx, &sessions[i])
		if err != nil {
			return nil, err
		}
		results = append(results, SessionWithAvailability{
			Session:      sessions[i],
			Availability: avail,
		})
	}
	return results, nil
}
