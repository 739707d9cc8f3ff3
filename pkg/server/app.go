package server

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"StockLens/internal/domain/repository"
	"StockLens/pkg/config"
	xhttp "StockLens/pkg/http"
	"StockLens/pkg/http/middleware"
	applogger "StockLens/pkg/logger"
)

// App encapsulates the application lifecycle: it builds the HTTP server
// around the injected handler, runs until a shutdown signal, and releases
// resources on the way out.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	handler    xhttp.Handler
	names      repository.NameCache
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, logger *applogger.Logger, handler xhttp.Handler, names repository.NameCache) *App {
	return &App{
		cfg:     cfg,
		logger:  logger,
		handler: handler,
		names:   names,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	opts := []xhttp.ServerOption{
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithLogger(a.logger),
	}
	if len(a.cfg.CORS.AllowOrigins) > 0 {
		opts = append(opts, xhttp.WithCORS(middleware.CORSConfig{
			AllowOrigins:     a.cfg.CORS.AllowOrigins,
			AllowCredentials: a.cfg.CORS.AllowCredentials,
			MaxAge:           a.cfg.CORS.MaxAge,
		}))
	}
	if a.cfg.Metrics.Enabled && a.cfg.Metrics.Path != "" {
		opts = append(opts, xhttp.WithMetricsPath(a.cfg.Metrics.Path))
	}
	a.httpServer = xhttp.NewServer(a.handler, opts...)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("environment", a.cfg.Environment),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops the HTTP server and closes resources.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		return err
	}

	if closer, ok := a.names.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			a.logger.Warn("name cache close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
