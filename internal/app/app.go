package app

import (
	"context"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/feedroom-server/internal/config"
	"github.com/vovakirdan/feedroom-server/internal/core"
	transporthttp "github.com/vovakirdan/feedroom-server/internal/transport/http"
)

// App wires together core and transport layers.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	worker          *core.Worker
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) *App {
	worker := core.NewWorker(cfg.AliveInterval, logger)
	server := transporthttp.NewServer(worker, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		worker:          worker,
		log:             logger,
	}
}

// Run starts the worker loop and the HTTP server, and blocks until context
// cancellation or a fatal server error. In-flight connections get
// shutdownTimeout to close gracefully.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go a.worker.Run(ctx)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-serverErr
	}
}
