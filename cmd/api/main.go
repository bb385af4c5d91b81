package main

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

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ghuser/produtos-api/pkg/app"
	"github.com/ghuser/produtos-api/pkg/auth"
	"github.com/ghuser/produtos-api/pkg/cache"
	"github.com/ghuser/produtos-api/pkg/config"
	"github.com/ghuser/produtos-api/pkg/database"
	"github.com/ghuser/produtos-api/pkg/events"
	"github.com/ghuser/produtos-api/pkg/httpx"
	"github.com/ghuser/produtos-api/pkg/logger"
	"github.com/ghuser/produtos-api/pkg/telemetry"
	productApi "github.com/ghuser/produtos-api/services/product/application/api"
)

const shutdownGrace = 30 * time.Second

// @title					Produtos API
// @version				1.0
// @description			Credential-gated product API: authenticated users manage products they own.
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
func main() {
	if err := run(); err != nil {
		slog.Error("api exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := config.ValidateForProduction(cfg); err != nil {
		return fmt.Errorf("production config validation: %w", err)
	}

	log := logger.New(cfg)
	ctx := context.Background()

	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setup otel: %w", err)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Sentry is optional: without a DSN the api still serves traffic.
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("sentry unavailable, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()
	log.Info("database pool connected")

	// The api publishes product events through the outbox, so the bus runs
	// in forwarder mode here; the worker consumes with the plain bus.
	eventBus, err := events.NewEventBusWithForwarder(cfg, log)
	if err != nil {
		return fmt.Errorf("setup event bus: %w", err)
	}
	defer eventBus.Close() //nolint:errcheck
	if err := eventBus.StartForwarder(ctx); err != nil {
		return fmt.Errorf("start event forwarder: %w", err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	application := &app.Application{
		Db:         pool,
		Logger:     log,
		EventBus:   eventBus,
		Redis:      redisClient,
		TokenCodec: auth.NewCodec([]byte(cfg.JWTSecret)),
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)
	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Database: pool,
		Redis:    redisClient,
		EventBus: eventBus,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Route("/api", func(r chi.Router) {
		productApi.ProductRoutes(r, application)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)
	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-quit:
		log.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
