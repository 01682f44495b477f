package cache_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"shinkai/internal/config"
	"shinkai/internal/infra"
	"shinkai/pkg/cache"
)

var Module = fx.Provide(provideItineraryCache)

// provideItineraryCache picks redis when REDIS_ADDR is set, the in-process map otherwise.
func provideItineraryCache(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) cache.ItineraryCache {
	client := infra.OpenRedis(cfg, logger)
	if client == nil {
		return cache.NewInMemoryItineraryCache()
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return cache.NewRedisItineraryCache(client, logger)
}
