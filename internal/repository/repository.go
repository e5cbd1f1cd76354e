// Package repository handles all interactions with the document store.
//
// Each store method performs exactly one driver operation and returns the
// driver's result untouched, because several routes pass that result
// straight back to the client. Store interfaces are defined here so the
// service layer can run against the in-memory implementations in tests.
package repository

import (
	"context"

	"github.com/mariaparlour/backend/internal/database"
	"github.com/mariaparlour/backend/internal/model"
	"github.com/mariaparlour/backend/internal/server"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserStore persists account documents keyed by email.
type UserStore interface {
	// Upsert inserts or updates the user matched by email.
	Upsert(ctx context.Context, user *model.User) (*mongo.UpdateResult, error)

	// FindByEmail returns the user document, or nil when none exists.
	FindByEmail(ctx context.Context, email string) (bson.M, error)

	// PromoteToAdmin atomically sets role=admin on the matched user and
	// returns the document as it was before the write. A nil document
	// means no user matched (and nothing was written).
	PromoteToAdmin(ctx context.Context, email string) (bson.M, *mongo.UpdateResult, error)
}

// UserInfoStore persists supplementary user data. Insert-only.
type UserInfoStore interface {
	Insert(ctx context.Context, info *model.UserInfo) (*mongo.InsertOneResult, error)
}

// ServiceStore persists catalog items.
type ServiceStore interface {
	List(ctx context.Context) ([]bson.M, error)

	// FindByID returns the service document, or nil when none exists.
	// A malformed id fails with a driver-level parse error.
	FindByID(ctx context.Context, id string) (bson.M, error)

	Insert(ctx context.Context, svc *model.Service) (*mongo.InsertOneResult, error)

	// Replace upserts the service matched by id with the given fields.
	Replace(ctx context.Context, id string, svc *model.Service) (*mongo.UpdateResult, error)

	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

// ReviewStore persists customer feedback. Insert-only.
type ReviewStore interface {
	List(ctx context.Context) ([]bson.M, error)
	Insert(ctx context.Context, review *model.Review) (*mongo.InsertOneResult, error)
}

// PaymentStore persists payment records.
type PaymentStore interface {
	List(ctx context.Context) ([]bson.M, error)

	// ListByEmail returns only payments whose email field equals email.
	ListByEmail(ctx context.Context, email string) ([]bson.M, error)

	Insert(ctx context.Context, payment *model.Payment) (*mongo.InsertOneResult, error)

	// SetStatus updates the status field of the payment matched by id.
	// No upsert: a missing payment yields a zero-match result.
	SetStatus(ctx context.Context, id, status string) (*mongo.UpdateResult, error)
}

// Repositories is the container for all store instances.
type Repositories struct {
	Users    UserStore
	UserInfo UserInfoStore
	Services ServiceStore
	Reviews  ReviewStore
	Payments PaymentStore
}

// NewRepositories constructs document-store-backed repositories using the
// shared client on the application container.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(s.DB.Collection(database.CollectionUsers)),
		UserInfo: NewUserInfoRepository(s.DB.Collection(database.CollectionUserInfo)),
		Services: NewServiceRepository(s.DB.Collection(database.CollectionServices)),
		Reviews:  NewReviewRepository(s.DB.Collection(database.CollectionReviews)),
		Payments: NewPaymentRepository(s.DB.Collection(database.CollectionPayments)),
	}
}
