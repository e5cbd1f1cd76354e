package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/mariaparlour/backend/internal/errs"
	"github.com/mariaparlour/backend/internal/server"
	"golang.org/x/time/rate"
)

// Rate limit parameters. Generous on purpose: the limiter is a backstop
// against runaway clients, not traffic shaping — that belongs to the edge
// proxy.
const (
	rateLimitPerSecond = 100
	rateLimitBurst     = 200
	rateLimitExpiry    = 3 * time.Minute
)

// RateLimitMiddleware applies a per-IP in-memory rate limit and records
// limit hits as New Relic custom events.
type RateLimitMiddleware struct {
	server *server.Server
}

// NewRateLimitMiddleware constructs a RateLimitMiddleware.
func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Limit returns Echo's rate limiter middleware keyed by client IP. Denied
// requests get a 429 and a telemetry event.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(rateLimitPerSecond),
			Burst:     rateLimitBurst,
			ExpiresIn: rateLimitExpiry,
		}),
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())

			return &errs.HTTPError{
				Status:    http.StatusTooManyRequests,
				ErrorFlag: true,
				Message:   "too many requests",
			}
		},
	})
}

// RecordRateLimitHit emits a RateLimitHit custom event for the endpoint.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
