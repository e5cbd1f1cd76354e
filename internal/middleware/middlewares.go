package middleware

import (
	"github.com/mariaparlour/backend/internal/repository"
	"github.com/mariaparlour/backend/internal/server"
	"github.com/mariaparlour/backend/internal/service"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares groups the middleware components the router wires up, built
// once with their shared dependencies.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers and the
	// global error handler.
	Global *GlobalMiddlewares

	// Auth provides the bearer token verifier and the admin role guard.
	Auth *AuthMiddleware

	// ContextEnhancer attaches the request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing provides the New Relic transaction middleware and attribute
	// enrichment.
	Tracing *TracingMiddleware

	// RateLimit applies the per-IP limiter and records limit telemetry.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components. The auth service
// verifies token signatures; the user store backs role lookups.
func NewMiddlewares(s *server.Server, auth *service.AuthService, users repository.UserStore) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s, auth, users),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
