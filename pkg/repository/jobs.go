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
	"github.com/careerdesk/core/pkg/utils"
)

type mongoJobRepository struct {
	coll    *mongo.Collection
	breaker *database.Breaker
}

// NewJobRepository creates a MongoDB-backed job repository
func NewJobRepository(db *mongo.Database, breaker *database.Breaker) JobRepository {
	return &mongoJobRepository{
		coll:    db.Collection("jobs"),
		breaker: breaker,
	}
}

func (r *mongoJobRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	if job.DatePosted.IsZero() {
		job.DatePosted = time.Now()
	}
	job.Slug = utils.JobSlug(job.Title)

	err := r.breaker.Do(func() error {
		result, err := r.coll.InsertOne(ctx, job)
		if err != nil {
			return err
		}
		if id, ok := result.InsertedID.(primitive.ObjectID); ok {
			job.ID = id
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert job: %w", err)
	}

	return job, nil
}

func (r *mongoJobRepository) List(ctx context.Context) ([]models.Job, error) {
	jobs := []models.Job{}

	err := r.breaker.Do(func() error {
		cursor, err := r.coll.Find(ctx, bson.M{})
		if err != nil {
			return err
		}
		return cursor.All(ctx, &jobs)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, nil
}

func (r *mongoJobRepository) Get(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	var job models.Job

	err := r.breaker.Do(func() error {
		return r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return &job, nil
}

func (r *mongoJobRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.JobUpdate) (*models.Job, error) {
	set := jobUpdateDocument(update)
	if len(set) == 0 {
		return r.Get(ctx, id)
	}

	var job models.Job
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err := r.breaker.Do(func() error {
		return r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&job)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	return &job, nil
}

func (r *mongoJobRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	var deleted int64

	err := r.breaker.Do(func() error {
		result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		deleted = result.DeletedCount
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *mongoJobRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	err := r.breaker.Do(func() error {
		var err error
		count, err = r.coll.CountDocuments(ctx, bson.M{})
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	return count, nil
}

// jobUpdateDocument builds the $set document from the supplied fields only.
// A title change also refreshes the stored slug.
func jobUpdateDocument(update *models.JobUpdate) bson.M {
	set := bson.M{}
	if update == nil {
		return set
	}

	if update.Title != nil {
		set["title"] = *update.Title
		set["slug"] = utils.JobSlug(*update.Title)
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.DatePosted != nil {
		set["datePosted"] = *update.DatePosted
	}
	if update.Icon != nil {
		set["icon"] = *update.Icon
	}

	return set
}
