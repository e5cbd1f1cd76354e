// Package service contains the business logic.
//
// It sits between the handler and repository layers: handlers pass in
// validated data, services perform the operation against the stores and
// external providers (token signing, payment intents, email jobs) and
// return the raw results handlers respond with.
package service

import (
	"github.com/mariaparlour/backend/internal/lib/job"
	"github.com/mariaparlour/backend/internal/repository"
	"github.com/mariaparlour/backend/internal/server"
)

// Services is the container for all service instances.
type Services struct {
	Auth     *AuthService
	Users    *UserService
	Catalog  *CatalogService
	Reviews  *ReviewService
	Payments *PaymentService
	Job      *job.JobService
}

// NewServices constructs the service container.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Auth:     NewAuthService(s),
		Users:    NewUserService(s, repos.Users, repos.UserInfo),
		Catalog:  NewCatalogService(s, repos.Services),
		Reviews:  NewReviewService(s, repos.Reviews),
		Payments: NewPaymentService(s, repos.Payments),
		Job:      s.Job,
	}, nil
}
