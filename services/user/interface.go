package user

import (
	"context"

	"github.com/go-redis/redis/v8"

	userRepo "surfbrew/database/repository/user"
	"surfbrew/models"
)

// RegisterInput carries the fields for a new operator account.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // admin | coach | school
	CoachID  string `json:"coach_id,omitempty"`
	SchoolID string `json:"school_id,omitempty"`
}

// UserService manages operator accounts and credential verification.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	// Login verifies the email/password pair and returns a signed bearer
	// token.
	Login(ctx context.Context, email, password string) (string, error)
	// Authenticate resolves a bearer token to the identity it was issued
	// for.
	Authenticate(ctx context.Context, token string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// DefaultUserService implements UserService with bcrypt hashing, JWT
// issuance and a Redis-backed auth-session cache.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client // optional; skipped when nil
}
