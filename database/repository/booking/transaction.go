package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"surfbrew/models"
)

// capacityGuard matches the session only while units more participants
// still fit. Document updates are atomic in MongoDB, so concurrent
// admissions against the same session serialize on this condition.
func capacityGuard(sessionID string, units int) bson.M {
	return bson.M{
		"id": sessionID,
		"$expr": bson.M{
			"$lte": bson.A{
				bson.M{"$add": bson.A{"$booked", units}},
				"$capacity",
			},
		},
	}
}

// Admit inserts the booking and bumps the session's booked counter in a
// single transaction. The counter update carries the capacity guard; when
// it matches nothing the transaction aborts and ErrNoCapacity is returned,
// so a rejected admission leaves no trace.
func (r *MongoBookingRepo) Admit(ctx context.Context, booking *models.Booking, units int) error {
	client := r.sessionColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	txnFn := func(sc mongo.SessionContext) error {
		update := bson.M{
			"$inc": bson.M{"booked": units},
			"$set": bson.M{"updated_at": now},
		}
		res, err := r.sessionColl.UpdateOne(sc, capacityGuard(booking.SessionID, units), update)
		if err != nil {
			return fmt.Errorf("capacity reservation failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrNoCapacity
		}

		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	return r.runTransaction(ctx, sess, txnFn)
}

// Cancel flips a confirmed booking to cancelled and releases its units
// back to the session, transactionally. Returns the booking as it was
// before the transition.
func (r *MongoBookingRepo) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var cancelled models.Booking
	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{"id": id, "status": models.BookingStatusConfirmed}
		update := bson.M{"$set": bson.M{
			"status":     models.BookingStatusCancelled,
			"updated_at": time.Now().UTC(),
		}}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)
		if err := r.bookingColl.FindOneAndUpdate(sc, filter, update, opts).Decode(&cancelled); err != nil {
			return err
		}

		release := bson.M{"$inc": bson.M{"booked": -cancelled.Units()}}
		if _, err := r.sessionColl.UpdateOne(sc, bson.M{"id": cancelled.SessionID}, release); err != nil {
			return fmt.Errorf("capacity release failed: %w", err)
		}
		return nil
	}

	if err := r.runTransaction(ctx, sess, txnFn); err != nil {
		return nil, err
	}
	return &cancelled, nil
}

// runTransaction executes fn inside a committed transaction, aborting on
// any error.
func (r *MongoBookingRepo) runTransaction(ctx context.Context, sess mongo.Session, fn func(mongo.SessionContext) error) error {
	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}
