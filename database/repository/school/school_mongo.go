package schoolRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"surfbrew/models"
)

// SchoolRepository defines persistence operations for school records.
type SchoolRepository interface {
	Create(ctx context.Context, school *models.School) error
	List(ctx context.Context, limit int64) ([]models.School, error)
}

// MongoSchoolRepo implements SchoolRepository using MongoDB.
type MongoSchoolRepo struct {
	coll *mongo.Collection
}

// NewMongoSchoolRepo creates a SchoolRepository backed by the given
// database handle.
func NewMongoSchoolRepo(db *mongo.Database) *MongoSchoolRepo {
	repo := &MongoSchoolRepo{coll: db.Collection("school")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create school indexes: %v\n", err)
	}
	return repo
}

func (r *MongoSchoolRepo) ensureIndexes() error {
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

// Create inserts a new school document.
func (r *MongoSchoolRepo) Create(ctx context.Context, school *models.School) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	school.CreatedAt = now
	school.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, school); err != nil {
		return fmt.Errorf("failed to create school: %w", err)
	}
	return nil
}

// List returns schools sorted by name ascending.
func (r *MongoSchoolRepo) List(ctx context.Context, limit int64) ([]models.School, error) {
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

	var schools []models.School
	if err := cursor.All(ctx, &schools); err != nil {
		return nil, err
	}
	return schools, nil
}
