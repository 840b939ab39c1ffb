package repository

import "errors"

var (
	// ErrNotFound is returned when no record matches the given identifier
	ErrNotFound = errors.New("record not found")

	// ErrUsernameTaken is returned when registration collides with an
	// existing username. Usernames carry a unique index.
	ErrUsernameTaken = errors.New("username already taken")
)
