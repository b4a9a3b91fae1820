package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"rodizio-reservas/internal/domain/settings"
	"rodizio-reservas/internal/usecase/queries"
	"rodizio-reservas/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// SettingsCache is a read-through cache in front of the settings store.
// Missing rows are never cached, so the store's NOT_FOUND error still reaches
// the caller. Redis failures fall back to the store.
type SettingsCache struct {
	client redisClient
	store  queries.SettingsReadStore
	prefix string
	ttl    time.Duration
}

var _ queries.SettingsReadStore = (*SettingsCache)(nil)
var _ shared.SettingsCache = (*SettingsCache)(nil)

func NewSettingsCache(client redisClient, store queries.SettingsReadStore, prefix string, ttl time.Duration) *SettingsCache {
	return &SettingsCache{
		client: client,
		store:  store,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *SettingsCache) key(section string) string {
	return c.prefix + ":settings:" + section
}

func (c *SettingsCache) FindPrices(ctx context.Context) (*settings.PriceSettings, error) {
	return readThrough(ctx, c, shared.SectionPrices, c.store.FindPrices)
}

func (c *SettingsCache) FindAddress(ctx context.Context) (*settings.Address, error) {
	return readThrough(ctx, c, shared.SectionAddress, c.store.FindAddress)
}

func (c *SettingsCache) FindPopup(ctx context.Context) (*settings.PopupSettings, error) {
	return readThrough(ctx, c, shared.SectionPopup, c.store.FindPopup)
}

func (c *SettingsCache) FindPayment(ctx context.Context) (*settings.PaymentSettings, error) {
	return readThrough(ctx, c, shared.SectionPayment, c.store.FindPayment)
}

func (c *SettingsCache) Invalidate(ctx context.Context, sections ...string) error {
	if len(sections) == 0 {
		return nil
	}
	keys := make([]string, len(sections))
	for i, s := range sections {
		keys[i] = c.key(s)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("settings cache invalidation failed", "keys", keys, "error", err.Error())
		return err
	}
	return nil
}

func readThrough[T any](ctx context.Context, c *SettingsCache, section string, load func(context.Context) (*T, error)) (*T, error) {
	key := c.key(section)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var v T
		if jsonErr := json.Unmarshal(raw, &v); jsonErr == nil {
			return &v, nil
		}
		slog.Warn("discarding undecodable settings cache entry", "key", key)
	case errors.Is(err, redis.Nil):
	default:
		slog.Warn("settings cache read failed", "key", key, "error", err.Error())
	}

	v, err := load(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return v, nil
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Warn("settings cache write failed", "key", key, "error", err.Error())
	}
	return v, nil
}
