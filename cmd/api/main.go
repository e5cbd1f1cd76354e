// Command api runs the parlour backend HTTP server.
//
// Wiring order: config → logger → server container → repositories →
// services → middlewares → handlers → router. The process then serves
// until SIGINT/SIGTERM and shuts down gracefully.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mariaparlour/backend/internal/config"
	"github.com/mariaparlour/backend/internal/handler"
	"github.com/mariaparlour/backend/internal/logger"
	"github.com/mariaparlour/backend/internal/middleware"
	"github.com/mariaparlour/backend/internal/repository"
	"github.com/mariaparlour/backend/internal/router"
	"github.com/mariaparlour/backend/internal/server"
	"github.com/mariaparlour/backend/internal/service"
)

// shutdownTimeout bounds graceful shutdown before the process exits
// regardless.
const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, loggerService, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	middlewares := middleware.NewMiddlewares(srv, services.Auth, repos.Users)
	handlers := handler.NewHandlers(srv, services)

	e := router.New(srv, middlewares, handlers)
	srv.SetupHTTPServer(e)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down cleanly: %w", err)
	}

	log.Info().Msg("shutdown complete")
	return nil
}
