package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job represents a job posting document
type Job struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Location    string             `bson:"location" json:"location"`
	DatePosted  time.Time          `bson:"datePosted" json:"datePosted"`
	Icon        string             `bson:"icon" json:"icon"`
	Slug        string             `bson:"slug" json:"slug"`
}

// JobUpdate carries the fields of a partial job update. Nil fields are
// left untouched by the merge.
type JobUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	DatePosted  *time.Time `json:"datePosted"`
	Icon        *string    `json:"icon"`
}
