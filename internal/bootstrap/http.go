package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jobconnect/jobconnect-web/config"
	httpx "github.com/jobconnect/jobconnect-web/internal/http"
)

const shutdownWaitTimeout = 10 * time.Second

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services *ServiceContainer
	Logger   *slog.Logger
}

// BuildHTTPHandler builds the browser-facing router.
func BuildHTTPHandler(cfg *HTTPServerConfig) (http.Handler, error) {
	if cfg == nil || cfg.Config == nil || cfg.Services == nil {
		return nil, errors.New("http server config requires config and services")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Config.HTTP.CompressionEnabled {
		logger.Info("HTTP compression enabled", "level", cfg.Config.HTTP.CompressionLevel)
	}
	h, err := httpx.NewRouter(cfg.Services.RouterServices(cfg.Config, logger))
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}
	return h, nil
}

// StartHTTPServer creates and starts the HTTP server. Listen failures are
// delivered on the returned channel.
func StartHTTPServer(cfg *HTTPServerConfig) (*http.Server, <-chan error, error) {
	handler, err := BuildHTTPHandler(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	addr := cfg.Config.HTTP.Addr
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":3000"
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", serveErr)
		}
		close(errCh)
	}()

	return server, errCh, nil
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	if server == nil {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownWaitTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	logger.InfoContext(ctx, "HTTP server stopped")
	return nil
}

// WaitForShutdown blocks until SIGINT/SIGTERM, ctx cancellation or a server
// failure, then stops the server.
func WaitForShutdown(ctx context.Context, server *http.Server, errCh <-chan error, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-sigCtx.Done():
		logger.Info("shutdown signal received")
		return ShutdownHTTPServer(context.WithoutCancel(ctx), server, logger)
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		logger.Error("service error", "error", err)
		if stopErr := ShutdownHTTPServer(context.WithoutCancel(ctx), server, logger); stopErr != nil {
			logger.Error("graceful stop failed", "error", stopErr)
		}
		return err
	}
}
