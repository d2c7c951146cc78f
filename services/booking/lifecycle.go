package booking

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	bookingRepo "surfbrew/database/repository/booking"
	"surfbrew/models"
	"surfbrew/utils"
)

// Cancel transitions a confirmed booking to cancelled and frees its
// capacity. A second cancel, a cancel of an attended booking, or an
// unknown id all fail with ErrBookingNotFound rather than silently
// succeeding.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string) error {
	if id == "" {
		return invalidInput("booking id is required")
	}

	booking, err := s.Bookings.Cancel(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrBookingNotFound
		}
		return storeError(err)
	}

	utils.GetLogger().Info("booking cancelled",
		zap.String("bookingID", booking.ID),
		zap.String("sessionID", booking.SessionID),
		zap.Int("freedUnits", booking.Units()))
	return nil
}

// Attend marks a confirmed booking as attended. The session already
// happened, so its capacity stays consumed.
func (s *DefaultBookingService) Attend(ctx context.Context, id string) error {
	if id == "" {
		return invalidInput("booking id is required")
	}

	if err := s.Bookings.Attend(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrBookingNotFound
		}
		return storeError(err)
	}

	utils.GetLogger().Info("booking attended", zap.String("bookingID", id))
	return nil
}

// List returns bookings matching the filter, newest first.
func (s *DefaultBookingService) List(ctx context.Context, filter bookingRepo.ListFilter) ([]models.Booking, error) {
	bookings, err := s.Bookings.List(ctx, filter)
	if err != nil {
		return nil, storeError(err)
	}
	return bookings, nil
}
