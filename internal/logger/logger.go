// Package logger configures the application's logging, monitoring,
// and observability.
//
// It uses zerolog for structured logging and integrates with
// New Relic to instrument the codebase, forwarding logs, metrics,
// and traces when a license key is configured.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/mtweb/carapi/internal/config"
)

// LoggerService owns the optional New Relic application instance.
//
// When New Relic is not configured (empty license key), the service
// still exists but GetApplication returns nil, and all integrations
// that consult it degrade to no-ops.
type LoggerService struct {
	nrApp *newrelic.Application
}

// GetApplication returns the New Relic application, or nil when
// New Relic is disabled.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	return ls.nrApp
}

// Shutdown flushes pending telemetry and stops the agent.
// It is a no-op when New Relic is disabled.
func (ls *LoggerService) Shutdown(timeout time.Duration) {
	if ls.nrApp != nil {
		ls.nrApp.Shutdown(timeout)
	}
}

// New builds the application logger and the LoggerService.
//
// Behavior:
//   - Log level comes from the observability config (env-aware default).
//   - "console" format uses zerolog's ConsoleWriter; anything else is JSON.
//   - When a New Relic license key is present, the agent is started and
//     log output is wrapped with zerologWriter so log lines are decorated
//     with trace linking metadata and forwarded to New Relic.
func New(cfg *config.Config) (*zerolog.Logger, *LoggerService, error) {
	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	service := &LoggerService{}

	nrCfg := cfg.Observability.NewRelic
	if nrCfg.LicenseKey != "" {
		opts := []newrelic.ConfigOption{
			newrelic.ConfigAppName(cfg.Observability.ServiceName),
			newrelic.ConfigLicense(nrCfg.LicenseKey),
			newrelic.ConfigAppLogForwardingEnabled(nrCfg.AppLogForwardingEnabled),
			newrelic.ConfigDistributedTracerEnabled(nrCfg.DistributedTracingEnabled),
		}
		if nrCfg.DebugLogging {
			opts = append(opts, newrelic.ConfigDebugLogger(os.Stderr))
		}

		nrApp, err := newrelic.NewApplication(opts...)
		if err != nil {
			return nil, nil, err
		}
		service.nrApp = nrApp
	}

	var out io.Writer = os.Stdout
	if cfg.Observability.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	// The New Relic writer wraps the base writer; it passes log lines
	// through unchanged when the agent is nil.
	if service.nrApp != nil {
		w := zerologWriter.New(out, service.nrApp)
		out = &w
	}

	log := zerolog.New(out).Level(level).With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()

	return &log, service, nil
}

// WithTraceContext returns a copy of the logger carrying the trace and
// span ids of the given transaction, so log lines can be correlated
// with distributed traces.
func WithTraceContext(log zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return log
	}

	md := txn.GetTraceMetadata()
	builder := log.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}
	return builder.Logger()
}

// NewPgxLogger builds a dedicated logger for pgx query tracing output.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(os.Stdout).Level(level).With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps a zerolog level onto the pgx tracelog level
// used by the SQL query logger.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}
