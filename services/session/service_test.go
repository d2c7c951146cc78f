package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	bookingRepo "surfbrew/database/repository/booking"
	sessionRepo "surfbrew/database/repository/session"
	"surfbrew/models"
	"surfbrew/services/booking"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, s *models.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepository) Update(ctx context.Context, id string, doc bson.M) error {
	args := m.Called(ctx, id, doc)
	return args.Error(0)
}

func (m *MockSessionRepository) Search(ctx context.Context, filter sessionRepo.SearchFilter) ([]models.Session, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Session), args.Error(1)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Availability(ctx context.Context, s *models.Session) (models.Availability, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(models.Availability), args.Error(1)
}

func (m *MockBookingService) Create(ctx context.Context, in booking.CreateBookingInput) (*models.Booking, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) Cancel(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBookingService) Attend(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBookingService) List(ctx context.Context, filter bookingRepo.ListFilter) ([]models.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func validCreateInput() CreateSessionInput {
	return CreateSessionInput{
		Title:     "Dawn patrol",
		Location:  "Uluwatu",
		StartTime: time.Now().Add(48 * time.Hour),
		Duration:  90,
		Price:     40,
		Capacity:  6,
	}
}

func TestCreateSession_DefaultsApplied(t *testing.T) {
	repo := new(MockSessionRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Session")).Return(nil)

	svc := &DefaultSessionService{Repo: repo}
	input := validCreateInput()
	input.Capacity = 0

	created, err := svc.Create(context.Background(), input)

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.LevelAll, created.Level)
	assert.Equal(t, models.SessionTypeGroup, created.SessionType)
	assert.Equal(t, 1, created.Capacity)
}

func TestCreateSession_Validation(t *testing.T) {
	svc := &DefaultSessionService{}
	ctx := context.Background()

	input := validCreateInput()
	input.Title = ""
	_, err := svc.Create(ctx, input)
	assert.ErrorIs(t, err, booking.ErrInvalidInput)

	input = validCreateInput()
	input.Duration = 0
	_, err = svc.Create(ctx, input)
	assert.ErrorIs(t, err, booking.ErrInvalidInput)

	input = validCreateInput()
	input.Price = -1
	_, err = svc.Create(ctx, input)
	assert.ErrorIs(t, err, booking.ErrInvalidInput)

	input = validCreateInput()
	input.Level = "pro"
	_, err = svc.Create(ctx, input)
	assert.ErrorIs(t, err, booking.ErrInvalidInput)

	input = validCreateInput()
	input.Capacity = -2
	_, err = svc.Create(ctx, input)
	assert.ErrorIs(t, err, booking.ErrInvalidInput)
}

func TestSearch_DecoratesWithAvailability(t *testing.T) {
	repo := new(MockSessionRepository)
	bookings := new(MockBookingService)

	stored := []models.Session{
		{ID: "s1", Title: "Dawn patrol", Capacity: 6},
		{ID: "s2", Title: "Sunset group", Capacity: 4},
	}
	repo.On("Search", mock.Anything, mock.Anything).Return(stored, nil)
	bookings.On("Availability", mock.Anything, mock.MatchedBy(func(s *models.Session) bool { return s.ID == "s1" })).
		Return(models.Availability{Capacity: 6, Booked: 2, Available: 4}, nil)
	bookings.On("Availability", mock.Anything, mock.MatchedBy(func(s *models.Session) bool { return s.ID == "s2" })).
		Return(models.Availability{Capacity: 4, Booked: 4, Available: 0}, nil)

	svc := &DefaultSessionService{Repo: repo, Bookings: bookings}
	results, err := svc.Search(context.Background(), sessionRepo.SearchFilter{UpcomingOnly: true})

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, 4, results[0].Availability.Available)
	assert.Equal(t, 0, results[1].Availability.Available)
}

func TestSearch_StoreFailure(t *testing.T) {
	repo := new(MockSessionRepository)
	repo.On("Search", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	svc := &DefaultSessionService{Repo: repo}
	_, err := svc.Search(context.Background(), sessionRepo.SearchFilter{})

	assert.ErrorIs(t, err, booking.ErrStoreUnavailable)
}
