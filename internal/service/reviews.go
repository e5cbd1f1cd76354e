package service

import (
	"context"

	"github.com/mariaparlour/backend/internal/model"
	"github.com/mariaparlour/backend/internal/repository"
	"github.com/mariaparlour/backend/internal/server"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewService manages customer feedback. Reviews are world-readable and
// insert-only.
type ReviewService struct {
	server  *server.Server
	reviews repository.ReviewStore
}

// NewReviewService constructs a ReviewService.
func NewReviewService(s *server.Server, reviews repository.ReviewStore) *ReviewService {
	return &ReviewService{
		server:  s,
		reviews: reviews,
	}
}

// List returns all reviews.
func (s *ReviewService) List(ctx context.Context) ([]bson.M, error) {
	return s.reviews.List(ctx)
}

// Create stores a new review.
func (s *ReviewService) Create(ctx context.Context, review *model.Review) (*mongo.InsertOneResult, error) {
	return s.reviews.Insert(ctx, review)
}
