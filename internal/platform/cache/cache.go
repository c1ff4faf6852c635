// Package cache provides the ephemeral key-value store used to avoid repeated
// reads of slow-changing reference data. The cache is strictly optional: every
// failure is reported as a miss and callers fall through to storage.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is a key-to-value store with per-entry TTL.
type Cache interface {
	// Get returns the value for key, or false on a miss (including any
	// backend failure).
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set stores value under key for ttl. Best effort.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	// Invalidate removes key. Best effort.
	Invalidate(ctx context.Context, key string)
}

// RedisCache implements Cache over a shared Redis client. The client is
// constructed once at startup and injected.
type RedisCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisCache creates a cache backed by the given Redis URL, or returns an
// error when the URL cannot be parsed. Connectivity problems surface later as
// cache misses, not startup failures.
func NewRedisCache(redisURL string, logger *slog.Logger) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisCache{client: redis.NewClient(opts), logger: logger}, nil
}

// NewRedisCacheFromClient wraps an existing client; used by tests.
func NewRedisCacheFromClient(client *redis.Client, logger *slog.Logger) *RedisCache {
	return &RedisCache{client: client, logger: logger}
}

var _ Cache = (*RedisCache)(nil)

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return nil, false
	}
	return value, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.Warn("Cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (c *RedisCache) Invalidate(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Warn("Cache invalidate failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Close releases the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
