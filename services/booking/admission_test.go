package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"

	bookingRepo "surfbrew/database/repository/booking"
	"surfbrew/models"
)

func validInput() CreateBookingInput {
	return CreateBookingInput{
		SessionID:       "s1",
		UserName:        "Kai",
		UserEmail:       "kai@example.com",
		Participants:    1,
		ExperienceLevel: "beginner",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	sessions := new(MockSessionRepository)
	bookings := new(MockBookingRepository)
	sessions.On("GetByID", mock.Anything, "s1").Return(&models.Session{ID: "s1", Capacity: 4}, nil)
	bookings.On("Admit", mock.Anything, mock.AnythingOfType("*models.Booking"), 1).Return(nil)

	svc := &DefaultBookingService{Sessions: sessions, Bookings: bookings}
	created, err := svc.Create(context.Background(), validInput())

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.BookingStatusConfirmed, created.Status)
	bookings.AssertExpectations(t)
}

func TestCreateBooking_SessionNotFound(t *testing.T) {
	sessions := new(MockSessionRepository)
	sessions.On("GetByID", mock.Anything, "s1").Return(nil, mongo.ErrNoDocuments)

	svc := &DefaultBookingService{Sessions: sessions, Bookings: new(MockBookingRepository)}
	_, err := svc.Create(context.Background(), validInput())

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCreateBooking_InvalidInput(t *testing.T) {
	svc := &DefaultBookingService{}

	_, err := svc.Create(context.Background(), CreateBookingInput{UserName: "Kai", UserEmail: "kai@example.com"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	in := validInput()
	in.Participants = -1
	_, err = svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	in = validInput()
	in.UserEmail = ""
	_, err = svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateBooking_CapacityRejectionCarriesRemaining(t *testing.T) {
	sessions := new(MockSessionRepository)
	bookings := new(MockBookingRepository)
	sessions.On("GetByID", mock.Anything, "s1").Return(&models.Session{ID: "s1", Capacity: 4}, nil)
	bookings.On("Admit", mock.Anything, mock.Anything, 2).Return(bookingRepo.ErrNoCapacity)
	bookings.On("GetActiveBySession", mock.Anything, "s1").Return([]models.Booking{
		{ID: "b1", Participants: 3, Status: models.BookingStatusConfirmed},
	}, nil)

	svc := &DefaultBookingService{Sessions: sessions, Bookings: bookings}
	in := validInput()
	in.Participants = 2
	_, err := svc.Create(context.Background(), in)

	var capErr *CapacityError
	assert.ErrorAs(t, err, &capErr)
	assert.Equal(t, 1, capErr.Available)
	assert.EqualError(t, capErr, "Only 1 spot(s) left")
}

func TestCreateBooking_StoreFailureIsNotARejection(t *testing.T) {
	sessions := new(MockSessionRepository)
	bookings := new(MockBookingRepository)
	sessions.On("GetByID", mock.Anything, "s1").Return(&models.Session{ID: "s1", Capacity: 4}, nil)
	bookings.On("Admit", mock.Anything, mock.Anything, 1).Return(assert.AnError)

	svc := &DefaultBookingService{Sessions: sessions, Bookings: bookings}
	_, err := svc.Create(context.Background(), validInput())

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
	var capErr *CapacityError
	assert.False(t, errors.As(err, &capErr))
}

// Scenario: capacity 4, fill it, then reject with the exact remaining
// count.
func TestCreateBooking_FillThenReject(t *testing.T) {
	svc, _ := newFakeService(models.Session{ID: "s1", Capacity: 4})
	ctx := context.Background()

	in := validInput()
	in.Participants = 4
	created, err := svc.Create(ctx, in)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, created.Status)

	sess, _ := svc.Sessions.GetByID(ctx, "s1")
	avail, err := svc.Availability(ctx, sess)
	assert.NoError(t, err)
	assert.Equal(t, 0, avail.Available)

	in.Participants = 1
	_, err = svc.Create(ctx, in)
	var capErr *CapacityError
	assert.ErrorAs(t, err, &capErr)
	assert.EqualError(t, capErr, "Only 0 spot(s) left")
}

// Scenario: two concurrent requests for the last two spots; exactly one
// wins.
func TestCreateBooking_ConcurrentAdmissionsNeverOverbook(t *testing.T) {
	svc, store := newFakeService(models.Session{ID: "s1", Capacity: 2})
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := validInput()
			in.Participants = 2
			_, err := svc.Create(ctx, in)
			results[i] = err
		}(i)
	}
	wg.Wait()

	var successes, capacityRejections int
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		var capErr *CapacityError
		if assert.ErrorAs(t, err, &capErr) {
			assert.Equal(t, 0, capErr.Available)
			capacityRejections++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, capacityRejections)

	booked := 0
	active, _ := store.GetActiveBySession(ctx, "s1")
	for i := range active {
		booked += active[i].Units()
	}
	assert.LessOrEqual(t, booked, 2)
}

// Scenario: cancelling frees capacity and a subsequent booking for it
// succeeds.
func TestCreateBooking_CancelFreesCapacity(t *testing.T) {
	svc, _ := newFakeService(models.Session{ID: "s1", Capacity: 2})
	ctx := context.Background()

	in := validInput()
	in.Participants = 2
	created, err := svc.Create(ctx, in)
	assert.NoError(t, err)

	_, err = svc.Create(ctx, in)
	var capErr *CapacityError
	assert.ErrorAs(t, err, &capErr)

	assert.NoError(t, svc.Cancel(ctx, created.ID))

	sess, _ := svc.Sessions.GetByID(ctx, "s1")
	avail, _ := svc.Availability(ctx, sess)
	assert.Equal(t, 2, avail.Available)

	_, err = svc.Create(ctx, in)
	assert.NoError(t, err)
}
