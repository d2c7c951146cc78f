package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"surfbrew/models"
)

const defaultListLimit = 50

// GetActiveBySession returns all non-cancelled bookings referencing the
// session. This feeds the availability sum, so it always reads the latest
// committed state.
func (r *MongoBookingRepo) GetActiveBySession(ctx context.Context, sessionID string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"session_id": sessionID,
		"status":     bson.M{"$ne": models.BookingStatusCancelled},
	}
	cursor, err := r.bookingColl.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// List returns bookings matching the filter, newest first.
func (r *MongoBookingRepo) List(ctx context.Context, filter ListFilter) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filt := bson.M{}
	if filter.Email != "" {
		filt["user_email"] = filter.Email
	}
	if filter.SessionID != "" {
		filt["session_id"] = filter.SessionID
	}
	if filter.Status != "" {
		filt["status"] = filter.Status
	}
	if filter.ExperienceLevel != "" {
		filt["experience_level"] = filter.ExperienceLevel
	}
	if filter.Query != "" {
		regex := primitive.Regex{Pattern: filter.Query, Options: "i"}
		filt["$or"] = bson.A{
			bson.M{"user_name": regex},
			bson.M{"user_email": regex},
		}
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.bookingColl.Find(ctx, filt, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
