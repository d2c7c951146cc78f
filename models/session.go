package models

import "time"

// Skill levels a session targets.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelAll          = "all"
)

// Session types.
const (
	SessionTypeGroup     = "group"
	SessionTypePrivate   = "private"
	SessionTypeRecurring = "recurring"
)

// Session represents a bookable surf lesson slot.
type Session struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CoachID     string    `bson:"coach_id,omitempty" json:"coach_id,omitempty"`
	SchoolID    string    `bson:"school_id,omitempty" json:"school_id,omitempty"`
	Location    string    `bson:"location" json:"location"`
	Level       string    `bson:"level" json:"level"`               // beginner | intermediate | advanced | all
	SessionType string    `bson:"session_type" json:"session_type"` // group | private | recurring
	StartTime   time.Time `bson:"start_time" json:"start_time"`     // UTC
	Duration    int       `bson:"duration_minutes" json:"duration_minutes"`
	Price       float64   `bson:"price" json:"price"`
	Capacity    int       `bson:"capacity" json:"capacity"` // max participants, >= 1
	Booked      int       `bson:"booked" json:"-"`          // admission counter, guarded by the booking transaction
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// Availability is the computed capacity snapshot for a session.
type Availability struct {
	Capacity  int `json:"capacity"`
	Booked    int `json:"booked"`
	Available int `json:"available"`
}

// ValidLevel reports whether lvl is a known skill level.
func ValidLevel(lvl string) bool {
	switch lvl {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelAll:
		return true
	}
	return false
}

// ValidSessionType reports whether t is a known session type.
func ValidSessionType(t string) bool {
	switch t {
	case SessionTypeGroup, SessionTypePrivate, SessionTypeRecurring:
		return true
	}
	return false
}
