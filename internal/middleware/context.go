package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/mariaparlour/backend/internal/logger"
	"github.com/mariaparlour/backend/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

const (
	// UserEmailKey holds the authenticated email set by VerifyToken.
	UserEmailKey = "user_email"

	// UserClaimsKey holds the full decoded token claims set by VerifyToken.
	UserClaimsKey = "user_claims"

	// LoggerKey holds the request-scoped logger.
	LoggerKey = "logger"
)

// ContextEnhancer attaches a request-scoped logger to each request. The
// logger carries request_id, method, path and client IP, plus trace IDs
// when a New Relic transaction is active.
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer constructs a ContextEnhancer.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext builds the per-request logger and stores it in both the
// Echo context and the request's context.Context, so repository code that
// only sees a context.Context can still log with correlation fields.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := GetRequestID(c)

			contextLogger := ce.server.Logger.With().
				Str("request_id", requestID).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			if email := GetUserEmail(c); email != "" {
				contextLogger = contextLogger.With().Str("user_email", email).Logger()
			}

			c.Set(LoggerKey, &contextLogger)

			ctx := context.WithValue(c.Request().Context(), LoggerKey, &contextLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetUserEmail reads the authenticated email from Echo context. Empty when
// VerifyToken has not run on this route.
func GetUserEmail(c echo.Context) string {
	if email, ok := c.Get(UserEmailKey).(string); ok {
		return email
	}
	return ""
}

// GetLogger retrieves the request-scoped logger from Echo context. Returns
// a no-op logger when EnhanceContext did not run, so callers never need a
// nil check.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	nop := zerolog.Nop()
	return &nop
}
