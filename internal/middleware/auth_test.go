package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/mariaparlour/backend/internal/config"
	"github.com/mariaparlour/backend/internal/errs"
	"github.com/mariaparlour/backend/internal/middleware"
	"github.com/mariaparlour/backend/internal/model"
	"github.com/mariaparlour/backend/internal/repository/memory"
	"github.com/mariaparlour/backend/internal/server"
	"github.com/mariaparlour/backend/internal/service"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func newGuards(t *testing.T) (*middleware.AuthMiddleware, *service.AuthService, *memory.UserStore) {
	t.Helper()

	logger := zerolog.Nop()
	srv := &server.Server{
		Config: &config.Config{Auth: config.AuthConfig{SecretKey: "secret"}},
		Logger: &logger,
	}

	auth := service.NewAuthService(srv)
	users := memory.NewUserStore()
	return middleware.NewAuthMiddleware(srv, auth, users), auth, users
}

func newEchoContext(header string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func assertStatus(t *testing.T, err error, want int) {
	t.Helper()

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("err = %v, want *errs.HTTPError", err)
	}
	if httpErr.Status != want {
		t.Errorf("status = %d, want %d", httpErr.Status, want)
	}
}

func TestVerifyTokenMissingHeader(t *testing.T) {
	guards, _, _ := newGuards(t)

	called := false
	err := guards.VerifyToken(func(c echo.Context) error {
		called = true
		return nil
	})(newEchoContext(""))

	assertStatus(t, err, http.StatusUnauthorized)
	if called {
		t.Error("handler ran despite missing header")
	}
}

func TestVerifyTokenNonBearerScheme(t *testing.T) {
	guards, _, _ := newGuards(t)

	err := guards.VerifyToken(func(c echo.Context) error { return nil })(
		newEchoContext("Token abc123"))
	assertStatus(t, err, http.StatusUnauthorized)
}

func TestVerifyTokenInvalid(t *testing.T) {
	guards, _, _ := newGuards(t)

	err := guards.VerifyToken(func(c echo.Context) error { return nil })(
		newEchoContext("Bearer not-a-token"))
	assertStatus(t, err, http.StatusUnauthorized)
}

func TestVerifyTokenAttachesIdentity(t *testing.T) {
	guards, auth, _ := newGuards(t)

	token, err := auth.SignToken(map[string]any{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}

	var email string
	handlerErr := guards.VerifyToken(func(c echo.Context) error {
		email = middleware.GetUserEmail(c)
		return c.NoContent(http.StatusOK)
	})(newEchoContext("Bearer " + token))

	if handlerErr != nil {
		t.Fatalf("VerifyToken: %v", handlerErr)
	}
	if email != "a@x.com" {
		t.Errorf("attached email = %q, want a@x.com", email)
	}
}

func TestRequireAdminForbidsNonAdmin(t *testing.T) {
	guards, _, users := newGuards(t)

	if _, err := users.Upsert(context.Background(), &model.User{Email: "user@x.com"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	c := newEchoContext("")
	c.Set(middleware.UserEmailKey, "user@x.com")

	err := guards.RequireAdmin(func(c echo.Context) error { return nil })(c)
	assertStatus(t, err, http.StatusForbidden)
}

func TestRequireAdminForbidsUnknownUser(t *testing.T) {
	guards, _, _ := newGuards(t)

	c := newEchoContext("")
	c.Set(middleware.UserEmailKey, "ghost@x.com")

	err := guards.RequireAdmin(func(c echo.Context) error { return nil })(c)
	assertStatus(t, err, http.StatusForbidden)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	guards, _, users := newGuards(t)

	if _, err := users.Upsert(context.Background(), &model.User{Email: "admin@x.com", Role: model.RoleAdmin}); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	c := newEchoContext("")
	c.Set(middleware.UserEmailKey, "admin@x.com")

	called := false
	err := guards.RequireAdmin(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)

	if err != nil {
		t.Fatalf("RequireAdmin: %v", err)
	}
	if !called {
		t.Error("handler never ran")
	}
}
