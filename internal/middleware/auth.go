package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mariaparlour/backend/internal/errs"
	"github.com/mariaparlour/backend/internal/model"
	"github.com/mariaparlour/backend/internal/repository"
	"github.com/mariaparlour/backend/internal/server"
	"github.com/mariaparlour/backend/internal/service"
)

// bearerPrefix is the required Authorization header scheme.
const bearerPrefix = "Bearer "

// AuthMiddleware holds the dependencies the request guards need: the token
// service for signature verification and the user store for role lookups.
type AuthMiddleware struct {
	server *server.Server
	auth   *service.AuthService
	users  repository.UserStore
}

// NewAuthMiddleware constructs an AuthMiddleware.
func NewAuthMiddleware(s *server.Server, auth *service.AuthService, users repository.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		auth:   auth,
		users:  users,
	}
}

// VerifyToken enforces a valid bearer token before the handler runs.
//
// A missing header, a malformed scheme, or a token that fails signature or
// expiry verification all short-circuit with the fixed 401 body. On
// success the decoded claims and email are attached to the request context
// for downstream stages.
func (auth *AuthMiddleware) VerifyToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return errs.NewUnauthorizedError()
		}

		if !strings.HasPrefix(header, bearerPrefix) {
			return errs.NewUnauthorizedError()
		}
		token := strings.TrimPrefix(header, bearerPrefix)

		claims, err := auth.auth.ParseToken(token)
		if err != nil {
			GetLogger(c).Warn().
				Err(err).
				Str("request_id", GetRequestID(c)).
				Msg("bearer token verification failed")

			return errs.NewUnauthorizedError()
		}

		c.Set(UserClaimsKey, claims)
		c.Set(UserEmailKey, service.EmailFromClaims(claims))

		return next(c)
	}
}

// RequireAdmin enforces the admin role after VerifyToken has attached the
// decoded identity.
//
// The stored user's role field is the sole source of authorization truth:
// no user, or any role other than admin, short-circuits with the fixed 403
// body. Store failures are upstream failures, not authorization failures,
// and propagate to the global error handler.
func (auth *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		email := GetUserEmail(c)

		user, err := auth.users.FindByEmail(c.Request().Context(), email)
		if err != nil {
			GetLogger(c).Error().
				Err(err).
				Str("request_id", GetRequestID(c)).
				Dur("duration", time.Since(start)).
				Msg("role lookup failed")
			return err
		}

		role := ""
		if user != nil {
			role, _ = user["role"].(string)
		}
		if role != model.RoleAdmin {
			return errs.NewForbiddenError()
		}

		return next(c)
	}
}
