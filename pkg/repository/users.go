package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/careerdesk/core/pkg/database"
	"github.com/careerdesk/core/pkg/models"
)

type mongoUserRepository struct {
	coll    *mongo.Collection
	breaker *database.Breaker
}

// NewUserRepository creates a MongoDB-backed user repository
func NewUserRepository(db *mongo.Database, breaker *database.Breaker) UserRepository {
	return &mongoUserRepository{
		coll:    db.Collection("users"),
		breaker: breaker,
	}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	err := r.breaker.Do(func() error {
		result, err := r.coll.InsertOne(ctx, user)
		if err != nil {
			return err
		}
		if id, ok := result.InsertedID.(primitive.ObjectID); ok {
			user.ID = id
		}
		return nil
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (r *mongoUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	err := r.breaker.Do(func() error {
		return r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// EnsureIndexes creates the unique index that enforces username uniqueness
// in the store rather than through racy pre-checks.
func (r *mongoUserRepository) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	err := r.breaker.Do(func() error {
		_, err := r.coll.Indexes().CreateOne(ctx, index)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create username index: %w", err)
	}

	return nil
}

func (r *mongoUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	err := r.breaker.Do(func() error {
		var err error
		count, err = r.coll.CountDocuments(ctx, bson.M{})
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}
