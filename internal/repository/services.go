package repository

import (
	"context"

	"github.com/mariaparlour/backend/internal/model"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ServiceRepository is the document-store implementation of ServiceStore.
type ServiceRepository struct {
	collection *mongo.Collection
}

// NewServiceRepository wraps the services collection.
func NewServiceRepository(collection *mongo.Collection) *ServiceRepository {
	return &ServiceRepository{collection: collection}
}

// List returns all service documents.
func (r *ServiceRepository) List(ctx context.Context) ([]bson.M, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	results := []bson.M{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, errors.Wrap(err, "failed to decode services")
	}
	return results, nil
}

// FindByID returns the service document, or nil when none exists.
func (r *ServiceRepository) FindByID(ctx context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var svc bson.M
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&svc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find service")
	}
	return svc, nil
}

// Insert stores a new service document.
func (r *ServiceRepository) Insert(ctx context.Context, svc *model.Service) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, svc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert service")
	}
	return result, nil
}

// Replace upserts the service matched by id with the given fields.
func (r *ServiceRepository) Replace(ctx context.Context, id string, svc *model.Service) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"_id": oid}
	update := bson.M{"$set": svc}
	opts := options.Update().SetUpsert(true)

	result, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to replace service")
	}
	return result, nil
}

// Delete removes the service matched by id.
func (r *ServiceRepository) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete service")
	}
	return result, nil
}
