package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"shinkai/pkg/itinerary"
)

const redisKeyPrefix = "itinerary:"

// RedisItineraryCache stores results as JSON. Redis failures are logged and
// reported as misses so the caller falls back to building.
type RedisItineraryCache struct {
	rc     *redis.Client
	logger *zap.Logger
}

func NewRedisItineraryCache(rc *redis.Client, logger *zap.Logger) *RedisItineraryCache {
	return &RedisItineraryCache{rc: rc, logger: logger}
}

func (c *RedisItineraryCache) Get(ctx context.Context, key string) (itinerary.Result, bool) {
	raw, err := c.rc.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("itinerary cache read failed", zap.String("key", key), zap.Error(err))
		}
		return itinerary.Result{}, false
	}

	var result itinerary.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		c.logger.Warn("itinerary cache entry corrupt", zap.String("key", key), zap.Error(err))
		return itinerary.Result{}, false
	}
	return result, true
}

func (c *RedisItineraryCache) Set(ctx context.Context, key string, result itinerary.Result, ttl time.Duration) {
	raw, err := json.Marshal(result)
	if err != nil {
		c.logger.Warn("itinerary cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.rc.Set(ctx, redisKeyPrefix+key, raw, ttl).Err(); err != nil {
		c.logger.Warn("itinerary cache write failed", zap.String("key", key), zap.Error(err))
	}
}
