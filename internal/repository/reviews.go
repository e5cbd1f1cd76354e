package repository

import (
	"context"

	"github.com/mariaparlour/backend/internal/model"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewRepository is the document-store implementation of ReviewStore.
type ReviewRepository struct {
	collection *mongo.Collection
}

// NewReviewRepository wraps the review collection.
func NewReviewRepository(collection *mongo.Collection) *ReviewRepository {
	return &ReviewRepository{collection: collection}
}

// List returns all review documents.
func (r *ReviewRepository) List(ctx context.Context) ([]bson.M, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	results := []bson.M{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, errors.Wrap(err, "failed to decode reviews")
	}
	return results, nil
}

// Insert stores a new review document.
func (r *ReviewRepository) Insert(ctx context.Context, review *model.Review) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert review")
	}
	return result, nil
}
