// carapi is a REST service managing the car catalog: CRUD endpoints
// over a PostgreSQL-backed store, with pagination, structured logging,
// and optional New Relic instrumentation.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mtweb/carapi/internal/config"
	"github.com/mtweb/carapi/internal/database"
	"github.com/mtweb/carapi/internal/handler"
	"github.com/mtweb/carapi/internal/logger"
	"github.com/mtweb/carapi/internal/middleware"
	"github.com/mtweb/carapi/internal/repository"
	"github.com/mtweb/carapi/internal/router"
	"github.com/mtweb/carapi/internal/server"
	"github.com/mtweb/carapi/internal/service"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		// config.New logs fatally on load errors itself; this guards
		// against future error returns.
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to load config")
	}

	log, loggerService, err := logger.New(cfg)
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to initialize logger")
	}

	ctx := context.Background()

	if err := database.Migrate(ctx, log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	middlewares := middleware.NewMiddlewares(srv)
	handlers := handler.NewHandlers(srv, services)

	e := router.New(srv, middlewares, handlers)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	// Block until an interrupt or termination signal arrives, then
	// shut down gracefully.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	if loggerService != nil {
		loggerService.Shutdown(10 * time.Second)
	}

	log.Info().Msg("server stopped")
}
