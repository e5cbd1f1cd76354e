package repository

import (
	"context"

	"github.com/mariaparlour/backend/internal/model"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository is the document-store implementation of UserStore.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository wraps the users collection.
func NewUserRepository(collection *mongo.Collection) *UserRepository {
	return &UserRepository{collection: collection}
}

// Upsert inserts or updates the user matched by email.
func (r *UserRepository) Upsert(ctx context.Context, user *model.User) (*mongo.UpdateResult, error) {
	filter := bson.M{"email": user.Email}
	update := bson.M{"$set": user}
	opts := options.Update().SetUpsert(true)

	result, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert user")
	}
	return result, nil
}

// FindByEmail returns the user document, or nil when none exists.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (bson.M, error) {
	var user bson.M
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	return user, nil
}

// PromoteToAdmin sets role=admin on the matched user.
//
// FindOneAndUpdate makes the prior-document read and the role write a
// single atomic operation, so a concurrent role change cannot be silently
// overwritten between them.
func (r *UserRepository) PromoteToAdmin(ctx context.Context, email string) (bson.M, *mongo.UpdateResult, error) {
	filter := bson.M{"email": email}
	update := bson.M{"$set": bson.M{"role": model.RoleAdmin}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var prior bson.M
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&prior)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &mongo.UpdateResult{}, nil
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to promote user")
	}

	result := &mongo.UpdateResult{MatchedCount: 1}
	if role, _ := prior["role"].(string); role != model.RoleAdmin {
		result.ModifiedCount = 1
	}
	return prior, result, nil
}
