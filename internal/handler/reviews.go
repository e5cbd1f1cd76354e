package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/mariaparlour/backend/internal/model"
	"github.com/mariaparlour/backend/internal/server"
	"github.com/mariaparlour/backend/internal/service"
	"github.com/mariaparlour/backend/internal/validation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateReviewRequest is the customer feedback payload.
type CreateReviewRequest struct {
	model.Review
}

func (r *CreateReviewRequest) Validate() error {
	return validation.Struct(r)
}

// ReviewHandler serves the review routes.
type ReviewHandler struct {
	Handler
	reviews *service.ReviewService
}

// NewReviewHandler constructs a ReviewHandler.
func NewReviewHandler(s *server.Server, reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		Handler: NewHandler(s),
		reviews: reviews,
	}
}

// List returns all reviews.
func (h *ReviewHandler) List(c echo.Context, _ *EmptyRequest) ([]bson.M, error) {
	return h.reviews.List(c.Request().Context())
}

// Create inserts a review and returns the driver's write result.
func (h *ReviewHandler) Create(c echo.Context, req *CreateReviewRequest) (*mongo.InsertOneResult, error) {
	return h.reviews.Create(c.Request().Context(), &req.Review)
}
