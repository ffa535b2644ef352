package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stockworks/stockworks-api/config"
	httpx "github.com/stockworks/stockworks-api/internal/http"
	"github.com/stockworks/stockworks-api/internal/observability/statsd"
)

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// StartHTTPServer creates and starts the HTTP server.
// Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg *HTTPServerConfig) *http.Server {
	if cfg == nil {
		return nil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	services := httpx.RouterServices{
		Materials:  cfg.Services.Materials,
		Inventory:  cfg.Services.Inventory,
		Hardware:   cfg.Services.Hardware,
		Pricing:    cfg.Services.Pricing,
		OrderWorks: cfg.Services.OrderWorks,
		Logger:     logger,
	}

	handler := buildHTTPHandler(logger, services, asMetricsSink(cfg.Services.Observability.MetricsSink))

	return startServer(logger, handler, appCfg.HTTP.Addr)
}

// buildHTTPHandler wraps the router with middleware.
// Order: Recover -> Logging -> Router.
func buildHTTPHandler(logger *slog.Logger, services httpx.RouterServices, metrics statsd.Sink) http.Handler {
	h := httpx.NewRouter(services)
	h = httpx.Logging(logger, metrics)(h)
	h = httpx.Recover(logger)(h)
	return h
}

// asMetricsSink converts a possibly nil concrete client into the metrics
// port. A typed nil passed through the interface would defeat the
// middleware's nil check.
//
//nolint:ireturn // middleware depends on the port, not the UDP client.
func asMetricsSink(client *statsd.Client) statsd.Sink {
	if client == nil {
		return nil
	}
	return client
}

func startServer(logger *slog.Logger, handler http.Handler, addr string) *http.Server {
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
		}
	}()

	return server
}

// ShutdownConfig contains dependencies for HTTP server shutdown.
type ShutdownConfig struct {
	Context context.Context
	Server  *http.Server
	Metrics interface{ Close() error }
	Logger  *slog.Logger
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(cfg ShutdownConfig) error {
	if cfg.Server == nil {
		return nil
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(cfg.Context, 10*time.Second)
	defer cancel()

	if err := cfg.Server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if cfg.Metrics != nil {
		if err := cfg.Metrics.Close(); err != nil && cfg.Logger != nil {
			cfg.Logger.Warn("close metrics sink failed", "error", err)
		}
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("HTTP server stopped")
	}

	return nil
}

// RunWithShutdown starts the HTTP server and blocks until an interrupt or
// termination signal arrives, then drains in-flight requests.
func RunWithShutdown(cfg *HTTPServerConfig) error {
	if cfg == nil {
		return errors.New("http server config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	server := StartHTTPServer(cfg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.Info("shutdown signal received")

	var metrics interface{ Close() error }
	if cfg.Services.Observability.MetricsSink != nil {
		metrics = cfg.Services.Observability.MetricsSink
	}

	return ShutdownHTTPServer(ShutdownConfig{
		Context: context.Background(),
		Server:  server,
		Metrics: metrics,
		Logger:  logger,
	})
}
