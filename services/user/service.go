package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"surfbrew/config"
	"surfbrew/models"
	"surfbrew/utils"
)

// Register validates the input, checks for duplicates and persists the
// account with a bcrypt password hash.
func (s *DefaultUserService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	if !models.ValidRole(input.Role) {
		return nil, fmt.Errorf("unknown role %q", input.Role)
	}

	existing, err := s.Repo.GetByEmail(ctx, input.Email)
	if err != nil {
		utils.GetLogger().Error("Register: duplicate check failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		CoachID:      input.CoachID,
		SchoolID:     input.SchoolID,
	}
	if err := s.Repo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	utils.GetLogger().Info("operator registered",
		zap.String("userID", account.ID),
		zap.String("role", account.Role))
	return account, nil
}

// Login verifies the credentials and issues a bearer token. The resolved
// identity is cached against the token hash so the auth middleware can
// skip a user lookup on subsequent requests.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (string, error) {
	account, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Login: user lookup failed", zap.Error(err))
		return "", fmt.Errorf("login failed, please try again")
	}
	if account == nil {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	ttl := tokenTTL()
	token, err := utils.GenerateToken(account.Email, account.Role, ttl)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	if s.AuthCache != nil {
		authSession := utils.AuthSession{
			UserID:    account.ID,
			Email:     account.Email,
			Role:      account.Role,
			CreatedAt: time.Now(),
		}
		if err := utils.SaveAuthSession(s.AuthCache, utils.HashToken(token), authSession, ttl); err != nil {
			utils.GetLogger().Warn("Login: failed to cache auth session", zap.Error(err))
		}
	}

	return token, nil
}

// Authenticate validates the token signature and expiry, then resolves the
// embedded identity: first from the auth-session cache, falling back to
// the user collection on a miss.
func (s *DefaultUserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	email, _, err := utils.ExtractClaims(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if s.AuthCache != nil {
		if cached, err := utils.GetAuthSession(s.AuthCache, utils.HashToken(token)); err == nil {
			return &models.User{ID: cached.UserID, Email: cached.Email, Role: cached.Role}, nil
		}
	}

	account, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve token identity: %w", err)
	}
	if account == nil {
		return nil, ErrInvalidToken
	}
	return account, nil
}

// GetByEmail returns the full account record for an email.
func (s *DefaultUserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.Repo.GetByEmail(ctx, email)
}

func tokenTTL() time.Duration {
	hours := config.AppConfig.TokenTTLHours
	if hours <= 0 {
		hours = 24 * 7
	}
	return time.Duration(hours) * time.Hour
}
