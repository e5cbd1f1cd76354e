package storeerr

import (
	"context"

	"github.com/mariaparlour/backend/internal/errs"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Classify maps a driver error onto a Code.
func Classify(err error) Code {
	switch {
	case err == nil:
		return Other
	case errors.Is(err, primitive.ErrInvalidHex):
		return InvalidID
	case mongo.IsDuplicateKeyError(err):
		return DuplicateKey
	case errors.Is(err, mongo.ErrNoDocuments):
		return NotFound
	case errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err):
		return Timeout
	default:
		return Other
	}
}

// HandleError converts a store/driver error into an *errs.HTTPError.
//
// Client-caused failures become 400s with a specific message; everything
// else becomes a generic 500. The original error is expected to be logged
// by the caller before translation.
func HandleError(err error) *errs.HTTPError {
	switch Classify(err) {
	case InvalidID:
		return errs.NewBadRequestError("invalid id", nil)
	case DuplicateKey:
		return errs.NewBadRequestError("a record with this identifier already exists", nil)
	case NotFound:
		return errs.NewNotFoundError("record not found")
	default:
		return errs.NewInternalServerError()
	}
}
