package app

import (
	"github.com/ghuser/produtos-api/pkg/auth"
	"github.com/ghuser/produtos-api/pkg/cache"
	"github.com/ghuser/produtos-api/pkg/database"
	"github.com/ghuser/produtos-api/pkg/events"
	"github.com/ghuser/produtos-api/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route-registration calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "product created", "product_id", id, "user", login)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db         *database.Database
	Logger     logger.Logger
	EventBus   *events.EventBus
	Redis      *cache.RedisClient
	TokenCodec *auth.Codec // verifies the signed token cookie; nil in worker process
}
