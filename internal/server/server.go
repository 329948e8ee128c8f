// Package server runs the HTTP server with graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/internlink/internlink/internal/bootstrap"
	"github.com/internlink/internlink/internal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// Run serves the application until SIGINT or SIGTERM, then drains in-flight
// requests and closes the database pool.
func Run(app *bootstrap.Application) error {
	srv := &http.Server{
		Addr:    ":" + app.Config.Server.Port,
		Handler: app.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", app.Config.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		app.DB.Close()
		return err
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Forced shutdown after timeout")
		app.DB.Close()
		return err
	}

	app.DB.Close()
	logger.Info().Msg("Server stopped")
	return nil
}
