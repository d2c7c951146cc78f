package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	bookingRepo "surfbrew/database/repository/booking"
	"surfbrew/models"
	"surfbrew/utils"
)

// Create resolves the session, then hands the reservation to the
// repository's transactional admission: a capacity-guarded counter bump
// plus the booking insert, committed together. Concurrent admissions
// against the same session serialize on the guard, so the capacity
// invariant holds without a pre-check that could race.
func (s *DefaultBookingService) Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	if input.SessionID == "" {
		return nil, invalidInput("session_id is required")
	}
	if input.UserName == "" || input.UserEmail == "" {
		return nil, invalidInput("user_name and user_email are required")
	}
	if input.Participants < 0 {
		return nil, invalidInput("participants must not be negative")
	}

	if _, err := s.Sessions.GetByID(ctx, input.SessionID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSessionNotFound
		}
		return nil, storeError(err)
	}

	booking := &models.Booking{
		ID:              uuid.New().String(),
		SessionID:       input.SessionID,
		UserName:        input.UserName,
		UserEmail:       input.UserEmail,
		Participants:    input.Participants,
		ExperienceLevel: input.ExperienceLevel,
		Notes:           input.Notes,
		Status:          models.BookingStatusConfirmed,
	}

	if err := s.Bookings.Admit(ctx, booking, booking.Units()); err != nil {
		if errors.Is(err, bookingRepo.ErrNoCapacity) {
			return nil, s.rejectForCapacity(ctx, input.SessionID)
		}
		return nil, storeError(err)
	}

	logger.Info("booking admitted",
		zap.String("bookingID", booking.ID),
		zap.String("sessionID", booking.SessionID),
		zap.Int("units", booking.Units()))
	return booking, nil
}

// rejectForCapacity re-reads the session after a failed guard to report
// the exact remaining count. The session may have disappeared between the
// resolve and the guard; that surfaces as NotFound.
func (s *DefaultBookingService) rejectForCapacity(ctx context.Context, sessionID string) error {
	session, err := s.Sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrSessionNotFound
		}
		return storeError(err)
	}

	avail, err := s.Availability(ctx, session)
	if err != nil {
		return err
	}
	return &CapacityError{Available: avail.Available}
}
