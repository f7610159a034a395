package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/ecoleta/pkg/app"
	"github.com/ghuser/ecoleta/pkg/cache"
	"github.com/ghuser/ecoleta/pkg/config"
	"github.com/ghuser/ecoleta/pkg/database"
	"github.com/ghuser/ecoleta/pkg/events"
	"github.com/ghuser/ecoleta/pkg/logger"
	"github.com/ghuser/ecoleta/pkg/telemetry"
	pointServices "github.com/ghuser/ecoleta/services/point/application/services"
	pointEvents "github.com/ghuser/ecoleta/services/point/domain/events"
	"github.com/ghuser/ecoleta/services/point/domain/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(pool.DB(), events.Options{ConsumerGroup: cfg.ServiceName + "-worker"}, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	svcs, err := pointServices.New(appConfig)
	if err != nil {
		log.Error("failed to initialize point services", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	if err := registerSubscribers(ctx, eventBus, svcs.Query, log); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

type subscriber interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

// pointWarmer loads a point detail into the read cache.
type pointWarmer interface {
	Warm(ctx context.Context, id models.PointID) error
}

// registerSubscribers wires all domain event handlers.
func registerSubscribers(ctx context.Context, bus subscriber, warmer pointWarmer, log logger.Logger) error {
	errCh, err := bus.Subscribe(ctx, pointEvents.TopicPointCreated, handlePointCreated(warmer, log))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			log.ErrorContext(ctx, "subscriber error",
				"topic", pointEvents.TopicPointCreated,
				"error", err,
			)
		}
	}()

	log.Info("event subscribers registered", "topics", []string{pointEvents.TopicPointCreated})
	return nil
}

// handlePointCreated returns a handler for point.created events.
// Handlers must be idempotent; the EventBus retries up to 3x on failure.
// A malformed payload is returned as an error. Cache warming is best-effort.
func handlePointCreated(warmer pointWarmer, log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.DecodeJSON[pointEvents.PointCreatedEvent](msg)
		if err != nil {
			return err
		}

		if err := warmer.Warm(ctx, models.PointID(evt.PointID)); err != nil {
			log.WarnContext(ctx, "cache warm failed for point.created",
				"point_id", evt.PointID, "error", err)
			return nil
		}
		log.InfoContext(ctx, "cache warmed",
			"point_id", evt.PointID, "city", evt.City, "uf", evt.UF)
		return nil
	}
}
