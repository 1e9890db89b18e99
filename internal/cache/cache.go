// Package cache stores recognized text keyed by the SHA-1 of the submitted
// image bytes, so resubmissions of an identical image skip recognition.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrMiss is returned when no cached result exists for a key.
var ErrMiss = errors.New("cache miss")

// Cache abstracts the Redis operations used by the service to make testing
// easier.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, expiration time.Duration) error
}

// ResultKey derives the cache key for an image payload.
func ResultKey(image []byte) string {
	sum := sha1.Sum(image)
	return "ocr:result:" + hex.EncodeToString(sum[:])
}

// RedisCache is a concrete implementation backed by go-redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache constructs a new Redis-backed cache adapter.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get retrieves a cached value, mapping redis.Nil to ErrMiss.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	return value, err
}

// Set writes a value with an expiration.
func (c *RedisCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	return c.client.Set(ctx, key, value, expiration).Err()
}
