package sessionRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"surfbrew/models"
)

const defaultSearchLimit = 50

// Search lists sessions matching the filter, sorted by start time
// ascending.
func (r *MongoSessionRepo) Search(ctx context.Context, filter SearchFilter) ([]models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filt := buildSearchFilter(filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "start_time", Value: 1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filt, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func buildSearchFilter(filter SearchFilter) bson.M {
	filt := bson.M{}
	if filter.Query != "" {
		regex := primitive.Regex{Pattern: filter.Query, Options: "i"}
		filt["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"description": regex},
			bson.M{"location": regex},
		}
	}
	if filter.Location != "" {
		filt["location"] = primitive.Regex{Pattern: filter.Location, Options: "i"}
	}
	if filter.Level != "" {
		filt["level"] = filter.Level
	}
	if filter.SessionType != "" {
		filt["session_type"] = filter.SessionType
	}
	if filter.CoachID != "" {
		filt["coach_id"] = filter.CoachID
	}
	if filter.SchoolID != "" {
		filt["school_id"] = filter.SchoolID
	}
	if filter.UpcomingOnly {
		filt["start_time"] = bson.M{"$gte": time.Now().UTC()}
	}
	return filt
}
