package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mariaparlour/backend/internal/handler"
	"github.com/mariaparlour/backend/internal/middleware"
	"github.com/mariaparlour/backend/internal/server"
)

// New builds the Echo instance: global middleware in order, the global
// error funnel, and the full route table.
func New(s *server.Server, middlewares *middleware.Middlewares, handlers *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: recovery first, then request ID and tracing so the
	// context enhancer can fold both into the request-scoped logger.
	e.Use(middlewares.Global.Recover())
	e.Use(middlewares.Global.Secure())
	e.Use(middlewares.Global.CORS())
	e.Use(middlewares.RateLimit.Limit())
	e.Use(middleware.RequestID())
	e.Use(middlewares.Tracing.NewRelicMiddleware())
	e.Use(middlewares.ContextEnhancer.EnhanceContext())
	e.Use(middlewares.Tracing.EnhanceTracing())
	e.Use(middlewares.Global.RequestLogger())

	registerRoutes(e, middlewares, handlers)
	registerSystemRoutes(e, handlers)

	return e
}

// registerRoutes maps the API route table. Guards compose left to right:
// RequireAdmin always follows VerifyToken, never stands alone.
func registerRoutes(e *echo.Echo, m *middleware.Middlewares, h *handler.Handlers) {
	verify := m.Auth.VerifyToken
	admin := m.Auth.RequireAdmin

	// Token issuance. Deliberately unauthenticated: the login bootstrap
	// step trusts the caller-supplied identity.
	e.POST("/jwt", handler.Handle(h.Auth.Handler, h.Auth.IssueToken, http.StatusOK,
		handler.NewReq[handler.IssueTokenRequest]()))

	// Accounts.
	e.PUT("/save-user", handler.Handle(h.Users.Handler, h.Users.SaveUser, http.StatusOK,
		handler.NewReq[handler.SaveUserRequest]()))
	e.POST("/save-user-info", handler.Handle(h.Users.Handler, h.Users.SaveUserInfo, http.StatusOK,
		handler.NewReq[handler.SaveUserInfoRequest]()))
	e.PATCH("/users/make-admin", handler.Handle(h.Users.Handler, h.Users.MakeAdmin, http.StatusOK,
		handler.NewReq[handler.EmptyRequest]()), verify)
	e.GET("/users/isAdmin", handler.Handle(h.Users.Handler, h.Users.IsAdmin, http.StatusOK,
		handler.NewReq[handler.IsAdminRequest]()))

	// Services catalog. Reads are public, writes are admin-only.
	e.GET("/services", handler.Handle(h.Catalog.Handler, h.Catalog.List, http.StatusOK,
		handler.NewReq[handler.EmptyRequest]()))
	e.GET("/services/:id", handler.Handle(h.Catalog.Handler, h.Catalog.Get, http.StatusOK,
		handler.NewReq[handler.EmptyRequest]()))
	e.POST("/services", handler.Handle(h.Catalog.Handler, h.Catalog.Create, http.StatusOK,
		handler.NewReq[handler.CreateServiceRequest]()), verify, admin)
	e.PUT("/services/:id", handler.Handle(h.Catalog.Handler, h.Catalog.Replace, http.StatusOK,
		handler.NewReq[handler.ReplaceServiceRequest]()), verify, admin)
	e.DELETE("/services/:id", handler.Handle(h.Catalog.Handler, h.Catalog.Delete, http.StatusOK,
		handler.NewReq[handler.EmptyRequest]()), verify, admin)

	// Reviews.
	e.GET("/reviews", handler.Handle(h.Reviews.Handler, h.Reviews.List, http.StatusOK,
		handler.NewReq[handler.EmptyRequest]()))
	e.POST("/reviews", handler.Handle(h.Reviews.Handler, h.Reviews.Create, http.StatusOK,
		handler.NewReq[handler.CreateReviewRequest]()), verify)

	// Payments.
	e.GET("/payments", handler.Handle(h.Payments.Handler, h.Payments.List, http.StatusOK,
		handler.NewReq[handler.EmptyRequest]()), verify, admin)
	e.GET("/payments/user", handler.Handle(h.Payments.Handler, h.Payments.ListByEmail, http.StatusOK,
		handler.NewReq[handler.PaymentsByEmailRequest]()), verify)
	e.POST("/payments", handler.Handle(h.Payments.Handler, h.Payments.Record, http.StatusOK,
		handler.NewReq[handler.RecordPaymentRequest]()))
	e.PUT("/payments/:id", handler.Handle(h.Payments.Handler, h.Payments.SetStatus, http.StatusOK,
		handler.NewReq[handler.SetPaymentStatusRequest]()), verify, admin)
	e.POST("/create-payment-intent", handler.Handle(h.Payments.Handler, h.Payments.CreateIntent, http.StatusOK,
		handler.NewReq[handler.CreateIntentRequest]()))
}
