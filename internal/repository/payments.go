package repository

import (
	"context"

	"github.com/mariaparlour/backend/internal/model"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentRepository is the document-store implementation of PaymentStore.
type PaymentRepository struct {
	collection *mongo.Collection
}

// NewPaymentRepository wraps the payment collection.
func NewPaymentRepository(collection *mongo.Collection) *PaymentRepository {
	return &PaymentRepository{collection: collection}
}

// List returns all payment documents.
func (r *PaymentRepository) List(ctx context.Context) ([]bson.M, error) {
	return r.find(ctx, bson.M{})
}

// ListByEmail returns only payments whose email field equals email.
func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]bson.M, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *PaymentRepository) find(ctx context.Context, filter bson.M) ([]bson.M, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	results := []bson.M{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, errors.Wrap(err, "failed to decode payments")
	}
	return results, nil
}

// Insert stores a new payment document.
func (r *PaymentRepository) Insert(ctx context.Context, payment *model.Payment) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert payment")
	}
	return result, nil
}

// SetStatus updates the status field of the payment matched by id.
func (r *PaymentRepository) SetStatus(ctx context.Context, id, status string) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"_id": oid}
	update := bson.M{"$set": bson.M{"status": status}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update payment status")
	}
	return result, nil
}
