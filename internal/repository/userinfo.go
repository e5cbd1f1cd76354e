package repository

import (
	"context"

	"github.com/mariaparlour/backend/internal/model"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserInfoRepository is the document-store implementation of UserInfoStore.
type UserInfoRepository struct {
	collection *mongo.Collection
}

// NewUserInfoRepository wraps the userInfo collection.
func NewUserInfoRepository(collection *mongo.Collection) *UserInfoRepository {
	return &UserInfoRepository{collection: collection}
}

// Insert stores a new user info document. There is no update path; the
// collection is append-only.
func (r *UserInfoRepository) Insert(ctx context.Context, info *model.UserInfo) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, info)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert user info")
	}
	return result, nil
}
