package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/careerdesk/core/pkg/models"
)

// JobRepository provides access to job posting records
type JobRepository interface {
	// Create inserts a job, defaulting datePosted to now and deriving the
	// slug from the title. The stored record is returned with its ID set.
	Create(ctx context.Context, job *models.Job) (*models.Job, error)

	// List returns all job postings in store order
	List(ctx context.Context) ([]models.Job, error)

	// Get returns the job with the given ID or ErrNotFound
	Get(ctx context.Context, id primitive.ObjectID) (*models.Job, error)

	// Update merges only the supplied fields into the matching record and
	// returns the post-update document, or ErrNotFound.
	Update(ctx context.Context, id primitive.ObjectID, update *models.JobUpdate) (*models.Job, error)

	// Delete removes the matching record or returns ErrNotFound
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Count returns the number of job postings
	Count(ctx context.Context) (int64, error)
}

// UserRepository provides access to registered accounts
type UserRepository interface {
	// Create inserts a user, returning ErrUsernameTaken on a duplicate
	Create(ctx context.Context, user *models.User) error

	// GetByUsername returns the matching user or ErrNotFound
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// EnsureIndexes creates the unique username index
	EnsureIndexes(ctx context.Context) error

	// Count returns the number of registered accounts
	Count(ctx context.Context) (int64, error)
}

// CounterRepository provides access to the two singleton counter documents.
// All mutations are single-document atomic store operations, so concurrent
// callers never observe duplicate reference numbers or double visitor
// increments.
type CounterRepository interface {
	// NextReference atomically increments the reference counter and returns
	// the new value, creating the document with count=1 on first use.
	NextReference(ctx context.Context) (int64, error)

	// CurrentReference returns the reference counter without mutating it,
	// or 0 if it has never been used.
	CurrentReference(ctx context.Context) (int64, error)

	// EnsureVisitorCounter lazily creates the visitor counter with its
	// default count. Idempotent.
	EnsureVisitorCounter(ctx context.Context, now time.Time) error

	// IncrementVisitorIfStale increments the visitor counter and stamps
	// lastUpdated, but only when at least interval has elapsed since the
	// previous update. Inside the window it matches nothing and leaves the
	// document untouched.
	IncrementVisitorIfStale(ctx context.Context, now time.Time, interval time.Duration) error

	// VisitorCount returns the current visitor tally
	VisitorCount(ctx context.Context) (int64, error)
}
