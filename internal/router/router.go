// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/mtweb/carapi/internal/handler"
	"github.com/mtweb/carapi/internal/middleware"
	"github.com/mtweb/carapi/internal/server"
)

// New builds the Echo router with the full middleware chain and all
// route groups registered.
//
// Middleware order matters: the New Relic transaction must exist
// before the context enhancer reads trace metadata, and the request ID
// must exist before the enhancer builds the request-scoped logger.
func New(s *server.Server, m *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())
	e.Use(m.RateLimit.Limit())

	registerSystemRoutes(e, h)
	registerCarRoutes(e, h)

	return e
}
