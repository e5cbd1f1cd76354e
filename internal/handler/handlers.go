package handler

import (
	"github.com/mariaparlour/backend/internal/server"
	"github.com/mariaparlour/backend/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one object
// around instead of many.
type Handlers struct {
	Auth     *AuthHandler
	Users    *UserHandler
	Catalog  *CatalogHandler
	Reviews  *ReviewHandler
	Payments *PaymentHandler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(s, services.Auth),
		Users:    NewUserHandler(s, services.Users),
		Catalog:  NewCatalogHandler(s, services.Catalog),
		Reviews:  NewReviewHandler(s, services.Reviews),
		Payments: NewPaymentHandler(s, services.Payments),
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
	}
}
