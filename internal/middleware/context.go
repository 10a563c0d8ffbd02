package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/mtweb/carapi/internal/logger"
	"github.com/mtweb/carapi/internal/server"
)

// LoggerKey is the key used to store the request-scoped logger in both
// the Echo context and the request's Go context.
const LoggerKey = "logger"

// ContextEnhancer is a middleware helper that enriches request context
// with a request-scoped logger carrying:
//   - request_id
//   - method, path, ip
//   - trace.id/span.id (when a New Relic transaction exists)
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a ContextEnhancer using the app container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns an Echo middleware that builds the
// request-scoped logger and stores it in both the Echo context and the
// Go request context, so non-HTTP code that only sees context.Context
// can still log with correlation fields.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := GetRequestID(c)

			contextLogger := ce.server.Logger.With().
				Str("request_id", requestID).
				Str("method", c.Request().Method).
				Str("path", c.Path()). // route template, not raw URL
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			c.Set(LoggerKey, &contextLogger)

			ctx := context.WithValue(c.Request().Context(), loggerCtxKey{}, &contextLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// loggerCtxKey is the private context key type, so values stored in
// the Go context cannot collide with other packages.
type loggerCtxKey struct{}

// GetLogger retrieves the request-scoped logger from Echo context.
// If EnhanceContext did not run, it returns a no-op logger so callers
// never hit a nil pointer.
func GetLogger(c echo.Context) *zerolog.Logger {
	if log, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return log
	}

	log := zerolog.Nop()
	return &log
}

// LoggerFromContext retrieves the request-scoped logger from a Go
// context, for code below the HTTP layer. Falls back to a no-op logger.
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	if log, ok := ctx.Value(loggerCtxKey{}).(*zerolog.Logger); ok {
		return log
	}

	log := zerolog.Nop()
	return &log
}
