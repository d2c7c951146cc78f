package coachRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"surfbrew/models"
)

// CoachRepository defines persistence operations for coach records.
type CoachRepository interface {
	Create(ctx context.Context, coach *models.Coach) error
	List(ctx context.Context, limit int64) ([]models.Coach, error)
}

// MongoCoachRepo implements CoachRepository using MongoDB.
type MongoCoachRepo struct {
	coll *mongo.Collection
}

// NewMongoCoachRepo creates a CoachRepository backed by the given database
// handle.
func NewMongoCoachRepo(db *mongo.Database) *MongoCoachRepo {
	repo := &MongoCoachRepo{coll: db.Collection("coach")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create coach indexes: %v\n", err)
	}
	return repo
}

func (r *MongoCoachRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new coach document.
func (r *MongoCoachRepo) Create(ctx context.Context, coach *models.Coach) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	coach.CreatedAt = now
	coach.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, coach); err != nil {
		return fmt.Errorf("failed to create coach: %w", err)
	}
	return nil
}

// List returns coaches sorted by name ascending.
func (r *MongoCoachRepo) List(ctx context.Context, limit int64) ([]models.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if limit <= 0 {
		limit = 100
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var coaches []models.Coach
	if err := cursor.All(ctx, &coaches); err != nil {
		return nil, err
	}
	return coaches, nil
}
