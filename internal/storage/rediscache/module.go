package rediscache

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/jokistudio/portal/internal/config"
)

// Module wires the optional Redis-backed portfolio cache.
var Module = fx.Options(
	fx.Provide(newCache),
	fx.Invoke(registerLifecycle),
)

type cacheParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newCache(p cacheParams) *PortfolioCache {
	return New(p.Config.RedisAddr, p.Config.PortfolioCacheTTL, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, cache *PortfolioCache) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return cache.Close()
		},
	})
}
