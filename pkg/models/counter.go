package models

import "time"

// ReferenceCounter is the singleton sequence document behind reference
// number generation. Count starts at 1 on first use and only ever grows.
type ReferenceCounter struct {
	ID    string `bson:"_id"`
	Count int64  `bson:"count"`
}

// VisitorCounter is the singleton visitor tally. Count moves forward at
// most once per gating interval, tracked by LastUpdated.
type VisitorCounter struct {
	ID          string    `bson:"_id"`
	Count       int64     `bson:"count"`
	LastUpdated time.Time `bson:"lastUpdated"`
}
