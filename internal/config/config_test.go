package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	env := map[string]string{
		"CARAPI_PRIMARY.ENV":                 "test",
		"CARAPI_SERVER.PORT":                 "8080",
		"CARAPI_SERVER.READ_TIMEOUT":         "10",
		"CARAPI_SERVER.WRITE_TIMEOUT":        "10",
		"CARAPI_SERVER.IDLE_TIMEOUT":         "60",
		"CARAPI_SERVER.CORS_ALLOWED_ORIGINS": "*",
		"CARAPI_DATABASE.HOST":               "localhost",
		"CARAPI_DATABASE.PORT":               "5432",
		"CARAPI_DATABASE.USER":               "carapi",
		"CARAPI_DATABASE.PASSWORD":           "carapi",
		"CARAPI_DATABASE.NAME":               "carapi_test",
		"CARAPI_DATABASE.SSL_MODE":           "disable",
		"CARAPI_DATABASE.MAX_OPEN_CONNS":     "10",
		"CARAPI_DATABASE.MAX_IDLE_CONNS":     "5",
		"CARAPI_DATABASE.CONN_MAX_LIFETIME":  "300",
		"CARAPI_DATABASE.CONN_MAX_IDLE_TIME": "60",
		"CARAPI_REDIS.ADDRESS":               "localhost:6379",
	}

	for k, v := range env {
		t.Setenv(k, v)
	}
}

func TestNew(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "carapi_test", cfg.Database.Name)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
}

func TestNewAppliesObservabilityDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "carapi", cfg.Observability.ServiceName)
	assert.Equal(t, "test", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
	assert.Empty(t, cfg.Observability.NewRelic.LicenseKey)
}

func TestNewReadsObservabilityOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CARAPI_OBSERVABILITY.SERVICE_NAME", "something-else")
	t.Setenv("CARAPI_OBSERVABILITY.ENVIRONMENT", "staging")
	t.Setenv("CARAPI_OBSERVABILITY.LOGGING.LEVEL", "debug")
	t.Setenv("CARAPI_OBSERVABILITY.LOGGING.FORMAT", "console")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Observability.Logging.Level)
	assert.Equal(t, "console", cfg.Observability.Logging.Format)

	// Telemetry naming always follows the primary config.
	assert.Equal(t, "carapi", cfg.Observability.ServiceName)
	assert.Equal(t, "test", cfg.Observability.Environment)
}

func TestObservabilityValidate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.ServiceName = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.Logging.SlowQueryThreshold = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestGetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()

	cfg.Environment = "production"
	cfg.Logging.Level = ""
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}

func TestIsProduction(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	assert.False(t, cfg.IsProduction())

	cfg.Environment = "production"
	assert.True(t, cfg.IsProduction())
}
