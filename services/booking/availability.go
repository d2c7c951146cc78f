package booking

import (
	"context"

	"surfbrew/models"
)

// Availability sums the units of every non-cancelled booking referencing
// the session. Each booking consumes at least one slot regardless of how
// its participant count was recorded, and the remaining count never goes
// negative.
func (s *DefaultBookingService) Availability(ctx context.Context, session *models.Session) (models.Availability, error) {
	capacity := session.Capacity
	if capacity < 1 {
		capacity = 1
	}

	bookings, err := s.Bookings.GetActiveBySession(ctx, session.ID)
	if err != nil {
		return models.Availability{}, storeError(err)
	}

	booked := 0
	for i := range bookings {
		booked += bookings[i].Units()
	}

	available := capacity - booked
	if available < 0 {
		available = 0
	}

	return models.Availability{
		Capacity:  capacity,
		Booked:    booked,
		Available: available,
	}, nil
}
