package router

import (
	"github.com/labstack/echo/v4"
	"github.com/mariaparlour/backend/internal/handler"
)

// registerSystemRoutes registers the endpoints that are not business
// logic: liveness, dependency health, docs UI and static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Plain-text liveness probe, kept at the root for uptime monitors.
	r.GET("/", h.Health.Root)

	// Dependency health (document store, redis).
	r.GET("/status", h.Health.CheckHealth)

	// Serve ./static at /static/* for openapi.json and docs assets.
	r.Static("/static", "static")

	// Docs UI (serves openapi.html).
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
