package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtweb/carapi/internal/server"
)

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	id := rec.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, rec.Body.String())
}

func TestRequestIDReusesIncomingHeader(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestEnhanceContextScopesLogger(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	s := &server.Server{Logger: &log}
	ce := NewContextEnhancer(s)

	e := echo.New()
	e.Use(RequestID(), ce.EnhanceContext())
	e.GET("/cars/:id", func(c echo.Context) error {
		GetLogger(c).Info().Msg("from echo context")
		LoggerFromContext(c.Request().Context()).Info().Msg("from go context")
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/cars/7", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-1"`)
	assert.Contains(t, out, `"path":"/cars/:id"`)
	assert.Contains(t, out, "from echo context")
	assert.Contains(t, out, "from go context")
}

func TestLoggerFallbacks(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	require.NotNil(t, GetLogger(c))
	require.NotNil(t, LoggerFromContext(context.Background()))
}
