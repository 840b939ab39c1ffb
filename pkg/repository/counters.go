package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/careerdesk/core/pkg/database"
	"github.com/careerdesk/core/pkg/models"
)

const (
	referenceDocID = "reference_number"
	visitorDocID   = "site_visitors"

	// DefaultVisitorCount seeds the visitor counter on first use
	DefaultVisitorCount = 905
)

type mongoCounterRepository struct {
	references *mongo.Collection
	visitors   *mongo.Collection
	breaker    *database.Breaker
}

// NewCounterRepository creates a MongoDB-backed counter repository
func NewCounterRepository(db *mongo.Database, breaker *database.Breaker) CounterRepository {
	return &mongoCounterRepository{
		references: db.Collection("reference_counters"),
		visitors:   db.Collection("visitor_counters"),
		breaker:    breaker,
	}
}

// NextReference is a single FindOneAndUpdate, so the store serializes
// concurrent callers and no two of them can see the same count.
func (r *mongoCounterRepository) NextReference(ctx context.Context) (int64, error) {
	filter := bson.M{"_id": referenceDocID}
	update := bson.M{"$inc": bson.M{"count": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter models.ReferenceCounter
	err := r.breaker.Do(func() error {
		return r.references.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to advance reference counter: %w", err)
	}

	return counter.Count, nil
}

func (r *mongoCounterRepository) CurrentReference(ctx context.Context) (int64, error) {
	var counter models.ReferenceCounter

	err := r.breaker.Do(func() error {
		return r.references.FindOne(ctx, bson.M{"_id": referenceDocID}).Decode(&counter)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read reference counter: %w", err)
	}

	return counter.Count, nil
}

func (r *mongoCounterRepository) EnsureVisitorCounter(ctx context.Context, now time.Time) error {
	filter := bson.M{"_id": visitorDocID}
	update := bson.M{"$setOnInsert": bson.M{
		"count":       DefaultVisitorCount,
		"lastUpdated": now,
	}}
	opts := options.Update().SetUpsert(true)

	err := r.breaker.Do(func() error {
		_, err := r.visitors.UpdateOne(ctx, filter, update, opts)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to ensure visitor counter: %w", err)
	}

	return nil
}

// IncrementVisitorIfStale matches the document only when lastUpdated is at
// least interval in the past, so a burst of requests on the boundary
// increments at most once.
func (r *mongoCounterRepository) IncrementVisitorIfStale(ctx context.Context, now time.Time, interval time.Duration) error {
	filter := bson.M{
		"_id":         visitorDocID,
		"lastUpdated": bson.M{"$lte": now.Add(-interval)},
	}
	update := bson.M{
		"$inc": bson.M{"count": 1},
		"$set": bson.M{"lastUpdated": now},
	}

	err := r.breaker.Do(func() error {
		_, err := r.visitors.UpdateOne(ctx, filter, update)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to increment visitor counter: %w", err)
	}

	return nil
}

func (r *mongoCounterRepository) VisitorCount(ctx context.Context) (int64, error) {
	var counter models.VisitorCounter

	err := r.breaker.Do(func() error {
		return r.visitors.FindOne(ctx, bson.M{"_id": visitorDocID}).Decode(&counter)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return DefaultVisitorCount, nil
		}
		return 0, fmt.Errorf("failed to read visitor counter: %w", err)
	}

	return counter.Count, nil
}
