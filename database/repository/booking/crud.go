package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"surfbrew/models"
)

// GetByID retrieves a booking by its unique ID. Returns
// mongo.ErrNoDocuments when the id does not resolve.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.bookingColl.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// Attend flips a confirmed booking to attended. The booked counter is left
// untouched: an attended booking still counts against the session's
// capacity. The conditional filter makes the transition fail on terminal
// or missing bookings instead of silently succeeding.
func (r *MongoBookingRepo) Attend(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.BookingStatusConfirmed}
	update := bson.M{"$set": bson.M{
		"status":     models.BookingStatusAttended,
		"updated_at": time.Now().UTC(),
	}}

	result, err := r.bookingColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to mark booking %s attended: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
