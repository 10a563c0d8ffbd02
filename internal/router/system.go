package router

import (
	"github.com/labstack/echo/v4"

	"github.com/mtweb/carapi/internal/handler"
)

// registerSystemRoutes registers system endpoints that are not part of
// business logic:
//  1. Health endpoint (used by Kubernetes/monitors)
//  2. Docs endpoint (OpenAPI UI)
//  3. Static files endpoint (serves openapi.json and openapi.html)
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.Static("/static", "static")

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
