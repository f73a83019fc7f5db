package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delivery-availability/core/constants"
	"delivery-availability/core/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the key does not exist.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is the surface the services depend on; backed by redis in production
// and by an in-memory fake in tests.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

type redisCache struct {
	client *redis.Client
}

var instance Cache

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func Init(cfg RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to redis", "addr", cfg.Addr, "error", err)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis initialized successfully", "addr", cfg.Addr, "db", cfg.DB)
	instance = &redisCache{client: client}
	return instance, nil
}

func GetCache() Cache {
	return instance
}

func (c *redisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrCacheMiss
	}
	return val, err
}

func (c *redisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *redisCache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.client.Expire(ctx, key, ttl).Err()
}

// ResolutionKey addresses the cached weekly resolution of one cell.
func ResolutionKey(locationID uuid.UUID, dayOfWeek int) string {
	return fmt.Sprintf("%s%s:%d", constants.RedisKeyResolutionCell, locationID, dayOfWeek)
}

// InvalidateCell drops the cached resolution for a cell after a write.
func InvalidateCell(ctx context.Context, c Cache, locationID uuid.UUID, dayOfWeek int) {
	if c == nil {
		return
	}
	if err := c.Del(ctx, ResolutionKey(locationID, dayOfWeek)); err != nil {
		logger.Warn("Cache:InvalidateCell:Error", "location_id", locationID, "day_of_week", dayOfWeek, "error", err)
	}
}
