package memory

import (
	"context"

	"github.com/mariaparlour/backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserStore is the in-memory implementation of repository.UserStore.
type UserStore struct {
	collection
}

// NewUserStore returns an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{}
}

// Upsert inserts or updates the user matched by email.
func (s *UserStore) Upsert(ctx context.Context, user *model.User) (*mongo.UpdateResult, error) {
	fields, err := toDoc(user)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.findOne(matchEmail(user.Email)); existing != nil {
		result := &mongo.UpdateResult{MatchedCount: 1}
		if applySet(existing, fields) {
			result.ModifiedCount = 1
		}
		return result, nil
	}

	id := s.insert(fields)
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: id}, nil
}

// FindByEmail returns the user document, or nil when none exists.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc := s.findOne(matchEmail(email)); doc != nil {
		return cloneDoc(doc), nil
	}
	return nil, nil
}

// PromoteToAdmin sets role=admin and returns the prior document.
func (s *UserStore) PromoteToAdmin(ctx context.Context, email string) (bson.M, *mongo.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.findOne(matchEmail(email))
	if doc == nil {
		return nil, &mongo.UpdateResult{}, nil
	}

	prior := cloneDoc(doc)
	result := &mongo.UpdateResult{MatchedCount: 1}
	if role, _ := doc["role"].(string); role != model.RoleAdmin {
		doc["role"] = model.RoleAdmin
		result.ModifiedCount = 1
	}
	return prior, result, nil
}

// UserInfoStore is the in-memory implementation of repository.UserInfoStore.
type UserInfoStore struct {
	collection
}

// NewUserInfoStore returns an empty in-memory user info store.
func NewUserInfoStore() *UserInfoStore {
	return &UserInfoStore{}
}

// Insert stores a new user info document.
func (s *UserInfoStore) Insert(ctx context.Context, info *model.UserInfo) (*mongo.InsertOneResult, error) {
	doc, err := toDoc(info)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.insert(doc)
	return &mongo.InsertOneResult{InsertedID: id}, nil
}

// ServiceStore is the in-memory implementation of repository.ServiceStore.
type ServiceStore struct {
	collection
}

// NewServiceStore returns an empty in-memory service store.
func NewServiceStore() *ServiceStore {
	return &ServiceStore{}
}

// List returns all service documents.
func (s *ServiceStore) List(ctx context.Context) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.findAll(func(bson.M) bool { return true }), nil
}

// FindByID returns the service document, or nil when none exists. A
// malformed id fails with the driver's parse error, like the real store.
func (s *ServiceStore) FindByID(ctx context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if doc := s.findOne(matchID(oid)); doc != nil {
		return cloneDoc(doc), nil
	}
	return nil, nil
}

// Insert stores a new service document.
func (s *ServiceStore) Insert(ctx context.Context, svc *model.Service) (*mongo.InsertOneResult, error) {
	doc, err := toDoc(svc)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.insert(doc)
	return &mongo.InsertOneResult{InsertedID: id}, nil
}

// Replace upserts the service matched by id with the given fields.
func (s *ServiceStore) Replace(ctx context.Context, id string, svc *model.Service) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	fields, err := toDoc(svc)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.findOne(matchID(oid)); existing != nil {
		result := &mongo.UpdateResult{MatchedCount: 1}
		if applySet(existing, fields) {
			result.ModifiedCount = 1
		}
		return result, nil
	}

	fields["_id"] = oid
	s.docs = append(s.docs, fields)
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: oid}, nil
}

// Delete removes the service matched by id.
func (s *ServiceStore) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, doc := range s.docs {
		if docID, ok := doc["_id"].(primitive.ObjectID); ok && docID == oid {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{DeletedCount: 0}, nil
}

// ReviewStore is the in-memory implementation of repository.ReviewStore.
type ReviewStore struct {
	collection
}

// NewReviewStore returns an empty in-memory review store.
func NewReviewStore() *ReviewStore {
	return &ReviewStore{}
}

// List returns all review documents.
func (s *ReviewStore) List(ctx context.Context) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.findAll(func(bson.M) bool { return true }), nil
}

// Insert stores a new review document.
func (s *ReviewStore) Insert(ctx context.Context, review *model.Review) (*mongo.InsertOneResult, error) {
	doc, err := toDoc(review)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.insert(doc)
	return &mongo.InsertOneResult{InsertedID: id}, nil
}

// PaymentStore is the in-memory implementation of repository.PaymentStore.
type PaymentStore struct {
	collection
}

// NewPaymentStore returns an empty in-memory payment store.
func NewPaymentStore() *PaymentStore {
	return &PaymentStore{}
}

// List returns all payment documents.
func (s *PaymentStore) List(ctx context.Context) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.findAll(func(bson.M) bool { return true }), nil
}

// ListByEmail returns only payments whose email field equals email.
func (s *PaymentStore) ListByEmail(ctx context.Context, email string) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.findAll(matchEmail(email)), nil
}

// Insert stores a new payment document.
func (s *PaymentStore) Insert(ctx context.Context, payment *model.Payment) (*mongo.InsertOneResult, error) {
	doc, err := toDoc(payment)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.insert(doc)
	return &mongo.InsertOneResult{InsertedID: id}, nil
}

// SetStatus updates the status field of the payment matched by id.
func (s *PaymentStore) SetStatus(ctx context.Context, id, status string) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.findOne(matchID(oid))
	if doc == nil {
		return &mongo.UpdateResult{}, nil
	}

	result := &mongo.UpdateResult{MatchedCount: 1}
	if doc["status"] != status {
		doc["status"] = status
		result.ModifiedCount = 1
	}
	return result, nil
}
