package app

import (
	"cloud.google.com/go/storage"

	"github.com/ghuser/ecoleta/pkg/cache"
	"github.com/ghuser/ecoleta/pkg/config"
	"github.com/ghuser/ecoleta/pkg/database"
	"github.com/ghuser/ecoleta/pkg/events"
	"github.com/ghuser/ecoleta/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to each bounded context's service container during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "point registered", "point_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Db       *database.Database // nil selects the in-memory point repository
	Logger   logger.Logger
	EventBus *events.EventBus   // nil disables point.created publishing
	Redis    *cache.RedisClient // nil disables the point detail cache
	GCS      *storage.Client    // set only when IMAGE_STORE_BACKEND=gcs
}
