package service

import (
	"context"

	"github.com/mariaparlour/backend/internal/model"
	"github.com/mariaparlour/backend/internal/repository"
	"github.com/mariaparlour/backend/internal/server"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserService manages account and supplementary-info documents.
type UserService struct {
	server *server.Server
	users  repository.UserStore
	info   repository.UserInfoStore
}

// NewUserService constructs a UserService.
func NewUserService(s *server.Server, users repository.UserStore, info repository.UserInfoStore) *UserService {
	return &UserService{
		server: s,
		users:  users,
		info:   info,
	}
}

// SaveUser upserts the user keyed by email. A first-time save (upsert
// inserted a document) also enqueues a welcome email; enqueue failures are
// logged but never fail the save.
func (s *UserService) SaveUser(ctx context.Context, user *model.User) (*mongo.UpdateResult, error) {
	result, err := s.users.Upsert(ctx, user)
	if err != nil {
		return nil, err
	}

	if result.UpsertedCount > 0 {
		if err := s.server.Job.EnqueueWelcomeEmail(user.Email, user.Name); err != nil {
			s.server.Logger.Warn().
				Err(err).
				Str("email", user.Email).
				Msg("failed to enqueue welcome email")
		}
	}

	return result, nil
}

// SaveUserInfo appends a supplementary info document.
func (s *UserService) SaveUserInfo(ctx context.Context, info *model.UserInfo) (*mongo.InsertOneResult, error) {
	return s.info.Insert(ctx, info)
}

// PromoteToAdmin sets role=admin on the user matched by email and returns
// the prior document alongside the write result. The prior document is nil
// when no user matched.
func (s *UserService) PromoteToAdmin(ctx context.Context, email string) (bson.M, *mongo.UpdateResult, error) {
	return s.users.PromoteToAdmin(ctx, email)
}

// IsAdmin reports whether the user matched by email has the admin role.
// A missing user, or any role other than admin, is false.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	role, _ := user["role"].(string)
	return role == model.RoleAdmin, nil
}
