package directory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	coachRepo "surfbrew/database/repository/coach"
	schoolRepo "surfbrew/database/repository/school"
	"surfbrew/models"
	"surfbrew/utils"
)

// DirectoryService manages the flat coach and school reference records.
type DirectoryService interface {
	CreateCoach(ctx context.Context, coach models.Coach) (*models.Coach, error)
	ListCoaches(ctx context.Context, limit int64) ([]models.Coach, error)
	CreateSchool(ctx context.Context, school models.School) (*models.School, error)
	ListSchools(ctx context.Context, limit int64) ([]models.School, error)
}

// DefaultDirectoryService implements DirectoryService.
type DefaultDirectoryService struct {
	Coaches coachRepo.CoachRepository
	Schools schoolRepo.SchoolRepository
}

func (s *DefaultDirectoryService) CreateCoach(ctx context.Context, coach models.Coach) (*models.Coach, error) {
	if coach.Name == "" {
		return nil, fmt.Errorf("coach name is required")
	}
	if coach.Rating < 0 || coach.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 0 and 5")
	}

	coach.ID = uuid.New().String()
	if err := s.Coaches.Create(ctx, &coach); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("coach created", zap.String("coachID", coach.ID))
	return &coach, nil
}

func (s *DefaultDirectoryService) ListCoaches(ctx context.Context, limit int64) ([]models.Coach, error) {
	return s.Coaches.List(ctx, limit)
}

func (s *DefaultDirectoryService) CreateSchool(ctx context.Context, school models.School) (*models.School, error) {
	if school.Name == "" {
		return nil, fmt.Errorf("school name is required")
	}
	if school.Location == "" {
		return nil, fmt.Errorf("school location is required")
	}

	school.ID = uuid.New().String()
	if err := s.Schools.Create(ctx, &school); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("school created", zap.String("schoolID", school.ID))
	return &school, nil
}

func (s *DefaultDirectoryService) ListSchools(ctx context.Context, limit int64) ([]models.School, error) {
	return s.Schools.List(ctx, limit)
}
