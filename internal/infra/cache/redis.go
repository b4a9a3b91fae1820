package cache

import (
	"context"
	"log/slog"
	"time"

	"rodizio-reservas/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil when redis is not configured or unreachable;
// callers then read settings straight from the store.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled() {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Warn("redis unavailable, settings cache disabled", "addr", cfg.Addr, "error", err.Error())
		_ = client.Close()
		return nil
	}

	slog.Info("redis connected", "addr", cfg.Addr)
	return client
}
