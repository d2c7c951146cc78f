package sessionRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"surfbrew/models"
)

// SearchFilter narrows a session listing.
type SearchFilter struct {
	Query        string // matched against title/description/location
	Location     string
	Level        string
	SessionType  string
	CoachID      string
	SchoolID     string
	UpcomingOnly bool
	Limit        int64
}

// SessionRepository defines persistence operations for sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	Update(ctx context.Context, id string, updateDoc bson.M) error
	Search(ctx context.Context, filter SearchFilter) ([]models.Session, error)
}
