package models

import "time"

// Operator roles. All three are equally privileged for administrative
// writes.
const (
	RoleAdmin  = "admin"
	RoleCoach  = "coach"
	RoleSchool = "school"
)

// User is an operator account able to authenticate against the API.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"` // admin | coach | school
	CoachID      string    `bson:"coach_id,omitempty" json:"coach_id,omitempty"`
	SchoolID     string    `bson:"school_id,omitempty" json:"school_id,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// ValidRole reports whether role is a known operator role.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleCoach, RoleSchool:
		return true
	}
	return false
}
