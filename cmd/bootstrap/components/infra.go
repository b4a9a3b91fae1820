package components

import (
	"context"
	"log/slog"

	"rodizio-reservas/internal/infra/cache"
	"rodizio-reservas/internal/infra/events"
	"rodizio-reservas/internal/infra/readstore"
	"rodizio-reservas/internal/infra/session"
	"rodizio-reservas/internal/infra/storage"
	"rodizio-reservas/internal/pkg/clock"
	"rodizio-reservas/internal/pkg/config"
	"rodizio-reservas/internal/usecase/commands"
	"rodizio-reservas/internal/usecase/queries"
	"rodizio-reservas/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// InfraModule wires the external services. Redis and AMQP are optional and
// fall back to no-op implementations when not configured.
var InfraModule = fx.Module("infra",
	fx.Provide(
		NewReceiptStorage,
		NewRedisClient,
		NewSettingsReadPath,
		NewEventPublisher,
		NewDraftStore,
	),
)

func NewReceiptStorage(cfg config.Config, clk clock.Clock) (shared.ReceiptStorage, error) {
	client, err := storage.NewS3Client(context.Background(), cfg.Storage)
	if err != nil {
		return nil, err
	}
	return storage.NewReceiptStore(client, cfg.Storage, clk), nil
}

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := cache.NewRedisClient(context.Background(), cfg.Redis)
	if client != nil {
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
	}
	return client
}

// NewSettingsReadPath puts the redis cache in front of the settings store
// when a client is available.
func NewSettingsReadPath(client *redis.Client, store *readstore.SettingsReadStore, cfg config.Config) (queries.SettingsReadStore, shared.SettingsCache) {
	if client == nil {
		return store, commands.NoopSettingsCache{}
	}
	c := cache.NewSettingsCache(client, store, cfg.Redis.Prefix, cfg.Redis.TTL)
	return c, c
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) shared.EventPublisher {
	if !cfg.AMQP.Enabled() {
		return events.NoopPublisher{}
	}
	p, err := events.NewAMQPPublisher(cfg.AMQP)
	if err != nil {
		slog.Warn("amqp unavailable, reservation events disabled", "error", err.Error())
		return events.NoopPublisher{}
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}

// NewDraftStore starts the idle-draft sweeper for the lifetime of the app
func NewDraftStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) shared.DraftStore {
	store := session.NewDraftStore(clk, cfg.Session.IdleTTL)
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go store.Run(ctx, cfg.Session.SweepInterval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return store
}
