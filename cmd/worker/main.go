package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/produtos-api/pkg/app"
	"github.com/ghuser/produtos-api/pkg/cache"
	"github.com/ghuser/produtos-api/pkg/config"
	"github.com/ghuser/produtos-api/pkg/database"
	"github.com/ghuser/produtos-api/pkg/events"
	"github.com/ghuser/produtos-api/pkg/logger"
	"github.com/ghuser/produtos-api/pkg/telemetry"
	productEvents "github.com/ghuser/produtos-api/services/product/domain/events"
)

func main() {
	if err := run(); err != nil {
		slog.Error("worker exited", "error", err)
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

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setup otel: %w", err)
	}
	defer otelShutdown(ctx) //nolint:errcheck

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

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		return fmt.Errorf("setup event bus: %w", err)
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	application := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}
	if err := registerSubscribers(ctx, application); err != nil {
		return fmt.Errorf("register subscribers: %w", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	// The deferred eventBus.Close waits out in-flight handlers.
	log.Info("shutting down worker", "signal", sig.String())
	return nil
}

// registerSubscribers attaches a handler per topic. New event types get an
// entry here.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	errCh, err := a.EventBus.Subscribe(ctx, productEvents.TopicProductCreated, handleProductCreated(a))
	if err != nil {
		return err
	}

	// Handler errors surface on errCh after retries are exhausted; drain it
	// so the bus never blocks on a full channel.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", productEvents.TopicProductCreated,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{productEvents.TopicProductCreated})
	return nil
}

// handleProductCreated warms the Redis read model for a freshly created
// product, so the owner's first GET is a cache hit. The handler is idempotent
// (Set overwrites), which the bus's retry policy requires.
func handleProductCreated(a *app.Application) func(context.Context, *message.Message) error {
	productCache := cache.NewProductCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt productEvents.ProductCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		err := productCache.Set(ctx, &cache.CachedProduct{
			ID:          evt.ProductID,
			UserID:      evt.UserID,
			Name:        evt.Name,
			Description: evt.Description,
			Price:       evt.Price,
			Category:    evt.Category,
			CreatedAt:   evt.OccurredAt,
			UpdatedAt:   evt.OccurredAt,
		})
		if err != nil {
			// Best-effort: a missed warm just means the next read hits Postgres.
			a.Logger.WarnContext(ctx, "cache warm failed for product.created",
				"product_id", evt.ProductID, "error", err)
			return nil
		}

		a.Logger.InfoContext(ctx, "cache warmed",
			"product_id", evt.ProductID, "user_id", evt.UserID)
		return nil
	}
}
