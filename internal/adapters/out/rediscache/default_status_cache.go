// Package rediscache caches the default status of each order state in Redis.
// Assignment counts are never cached: the save hook must see its own transaction.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const DefaultTTL = 5 * time.Minute

var ErrCacheMiss = errors.New("cache miss")

// DefaultStatusCache stores state -> default status entries.
type DefaultStatusCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewDefaultStatusCache uses DefaultTTL when ttl is not positive.
func NewDefaultStatusCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *DefaultStatusCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &DefaultStatusCache{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "default_status_cache"),
	}
}

func (c *DefaultStatusCache) Get(ctx context.Context, state order.State) (order.Status, error) {
	value, err := c.client.Get(ctx, cacheKey(state)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}

	return order.Status(value), nil
}

func (c *DefaultStatusCache) Set(ctx context.Context, state order.State, status order.Status) error {
	if err := c.client.Set(ctx, cacheKey(state), status.String(), c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Invalidate drops the entry of state. Registry commands call it after committing.
func (c *DefaultStatusCache) Invalidate(ctx context.Context, state order.State) error {
	if err := c.client.Del(ctx, cacheKey(state)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

// Wrap returns a cache-aside lookup in front of source. Redis failures are logged and
// answered from source, so an unavailable cache never blocks an order save.
func (c *DefaultStatusCache) Wrap(source ports.StateDefaultStatusLookup) ports.StateDefaultStatusLookup {
	return &cachedLookup{cache: c, source: source}
}

type cachedLookup struct {
	cache  *DefaultStatusCache
	source ports.StateDefaultStatusLookup
}

func (l *cachedLookup) DefaultStatus(ctx context.Context, state order.State) (order.Status, error) {
	status, err := l.cache.Get(ctx, state)
	if err == nil {
		return status, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		l.cache.logger.WarnContext(ctx, "Default status cache unavailable", "state", state.String(), "error", err)
	}

	status, err = l.source.DefaultStatus(ctx, state)
	if err != nil {
		return "", err
	}

	if setErr := l.cache.Set(ctx, state, status); setErr != nil {
		l.cache.logger.WarnContext(ctx, "Failed to cache default status", "state", state.String(), "error", setErr)
	}

	return status, nil
}

func cacheKey(state order.State) string {
	return fmt.Sprintf("order_integrity:default_status:%s", state)
}
