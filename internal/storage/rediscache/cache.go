package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jokistudio/portal/internal/domain/model"
)

const portfolioListKey = "portfolio:list"

// PortfolioCache keeps the public portfolio listing in Redis. The cache is
// optional: with no client configured every lookup is a miss and writes are
// no-ops, so callers never branch on whether caching is enabled.
type PortfolioCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New returns a cache backed by the given address. An empty address yields
// a disabled cache.
func New(addr string, ttl time.Duration, logger *slog.Logger) *PortfolioCache {
	if addr == "" {
		return &PortfolioCache{logger: logger}
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	return &PortfolioCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached listing and whether it was present.
func (c *PortfolioCache) Get(ctx context.Context) ([]model.Portfolio, bool) {
	if c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, portfolioListKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("portfolio cache read failed", "error", err)
		}
		return nil, false
	}

	var items []model.Portfolio
	if err := json.Unmarshal(payload, &items); err != nil {
		c.logger.Warn("portfolio cache payload corrupt", "error", err)
		return nil, false
	}
	return items, true
}

// Set stores the listing with the configured TTL. Failures are logged and
// swallowed, a cold cache is never an error.
func (c *PortfolioCache) Set(ctx context.Context, items []model.Portfolio) {
	if c.client == nil {
		return
	}

	payload, err := json.Marshal(items)
	if err != nil {
		c.logger.Warn("portfolio cache encode failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, portfolioListKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("portfolio cache write failed", "error", err)
	}
}

// Invalidate drops the cached listing after a mutation.
func (c *PortfolioCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, portfolioListKey).Err(); err != nil {
		c.logger.Warn("portfolio cache invalidate failed", "error", err)
	}
}

// Close releases the underlying client.
func (c *PortfolioCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
