package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const operationTimeout = 5 * time.Second

var (
	ErrCacheMiss = errors.New("cache: key not found")
)

type RedisCache struct {
	redisClient *redis.Client
	defaultTTL  time.Duration
}

func NewCache(
	redisClient *redis.Client,
	defaultTTL time.Duration,
) *RedisCache {
	return &RedisCache{
		redisClient: redisClient,
		defaultTTL:  defaultTTL,
	}
}

// NewClient builds a go-redis client from a redis:// URL.
func NewClient(redisURL string) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	return redis.NewClient(options), nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	value, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}

		return "", err
	}

	return value, nil
}

// Set stores value under key. A zero ttl falls back to the cache default.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	if ttl == 0 {
		ttl = c.defaultTTL
	}

	return c.redisClient.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	return c.redisClient.Ping(ctx).Err()
}
