package models

import "time"

// Coach is a flat reference record for an instructor.
type Coach struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Bio           string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Certification string    `bson:"certification,omitempty" json:"certification,omitempty"`
	SchoolID      string    `bson:"school_id,omitempty" json:"school_id,omitempty"`
	Rating        float64   `bson:"rating,omitempty" json:"rating,omitempty"` // 0..5
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
