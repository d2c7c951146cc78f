package models

import "time"

// School is a flat reference record for a surf school.
type School struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Location    string    `bson:"location" json:"location"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Website     string    `bson:"website,omitempty" json:"website,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
