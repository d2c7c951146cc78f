package models

import "time"

// Booking statuses. Bookings are admitted directly as confirmed; cancelled
// and attended are terminal.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusAttended  = "attended"
)

// Booking represents a reservation of participant slots against a session.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	SessionID       string    `bson:"session_id" json:"session_id"`
	UserName        string    `bson:"user_name" json:"user_name"`
	UserEmail       string    `bson:"user_email" json:"user_email"`
	Participants    int       `bson:"participants" json:"participants"`
	ExperienceLevel string    `bson:"experience_level,omitempty" json:"experience_level,omitempty"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status          string    `bson:"status" json:"status"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// Units returns the number of capacity units the booking consumes.
// A booking always takes at least one slot, even if recorded with zero
// participants.
func (b *Booking) Units() int {
	if b.Participants < 1 {
		return 1
	}
	return b.Participants
}
