package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"shinkai/internal/config"
)

// OpenRedis returns nil when no address is configured.
func OpenRedis(cfg *config.Config, logger *zap.Logger) *redis.Client {
	if cfg.Redis.Addr == "" {
		logger.Info("REDIS_ADDR not set, using in-memory itinerary cache")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		// The cache degrades to misses; the client keeps reconnecting on its own.
		logger.Warn("Redis ping failed", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}
	return client
}
