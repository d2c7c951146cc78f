package booking

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	bookingRepo "surfbrew/database/repository/booking"
	sessionRepo "surfbrew/database/repository/session"
	"surfbrew/models"
)

// Mock repositories

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

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Admit(ctx context.Context, b *models.Booking, units int) error {
	args := m.Called(ctx, b, units)
	return args.Error(0)
}

func (m *MockBookingRepository) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) Attend(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetActiveBySession(ctx context.Context, sessionID string) ([]models.Booking, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, filter bookingRepo.ListFilter) ([]models.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

// fakeStore is an in-memory store implementing both repository interfaces
// with the same serialization guarantee the Mongo guard provides: the
// capacity check and the counter bump happen under one lock.
type fakeStore struct {
	mu       sync.Mutex
	session  models.Session
	bookings []models.Booking
}

func newFakeStore(session models.Session) *fakeStore {
	return &fakeStore{session: session}
}

func (f *fakeStore) Create(ctx context.Context, s *models.Session) error { return nil }

func (f *fakeStore) GetByID(ctx context.Context, id string) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id != f.session.ID {
		return nil, mongo.ErrNoDocuments
	}
	s := f.session
	return &s, nil
}

func (f *fakeStore) Update(ctx context.Context, id string, doc bson.M) error { return nil }

func (f *fakeStore) Search(ctx context.Context, filter sessionRepo.SearchFilter) ([]models.Session, error) {
	return nil, nil
}

func (f *fakeStore) Admit(ctx context.Context, b *models.Booking, units int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b.SessionID != f.session.ID {
		return mongo.ErrNoDocuments
	}
	if f.session.Booked+units > f.session.Capacity {
		return bookingRepo.ErrNoCapacity
	}
	f.session.Booked += units
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeStore) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id && f.bookings[i].Status == models.BookingStatusConfirmed {
			before := f.bookings[i]
			f.bookings[i].Status = models.BookingStatusCancelled
			f.session.Booked -= before.Units()
			return &before, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeStore) Attend(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id && f.bookings[i].Status == models.BookingStatusConfirmed {
			f.bookings[i].Status = models.BookingStatusAttended
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeStore) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeStore) GetActiveBySession(ctx context.Context, sessionID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var active []models.Booking
	for i := range f.bookings {
		if f.bookings[i].SessionID == sessionID && f.bookings[i].Status != models.BookingStatusCancelled {
			active = append(active, f.bookings[i])
		}
	}
	return active, nil
}

func (f *fakeStore) List(ctx context.Context, filter bookingRepo.ListFilter) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Booking, len(f.bookings))
	copy(out, f.bookings)
	return out, nil
}

// bookingRepoView adapts fakeStore to BookingRepository (GetByID clashes
// with the session-side method).
type bookingRepoView struct {
	*fakeStore
}

func (v bookingRepoView) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return v.fakeStore.GetBookingByID(ctx, id)
}

func newFakeService(session models.Session) (*DefaultBookingService, *fakeStore) {
	store := newFakeStore(session)
	svc := &DefaultBookingService{
		Sessions: store,
		Bookings: bookingRepoView{store},
	}
	return svc, store
}
