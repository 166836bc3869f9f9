package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	pageKeyPrefix = "page:"
	// Season pages change between rounds; a day of caching keeps repeat
	// runs from hammering the source without serving stale results for long.
	defaultPageTTL = 24 * time.Hour
)

// RedisCache caches fetched page bodies so repeat runs and aborted runs
// resumed shortly after do not refetch the same HTML.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return &RedisCache{
		client: client,
		ttl:    defaultPageTTL,
	}, nil
}

// Close closes the Redis connection
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}

// HealthCheck pings Redis to verify connection
func (rc *RedisCache) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// Get returns the cached body for a URL, if present. Cache errors are
// treated as misses; the fetcher falls through to the network.
func (rc *RedisCache) Get(ctx context.Context, url string) (string, bool) {
	body, err := rc.client.Get(ctx, pageKeyPrefix+url).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[cache] get %s: %v", url, err)
		}
		return "", false
	}
	return body, true
}

// Set stores a page body under its URL. Failures are logged and
// swallowed; the cache is best effort.
func (rc *RedisCache) Set(ctx context.Context, url, body string) {
	if err := rc.client.Set(ctx, pageKeyPrefix+url, body, rc.ttl).Err(); err != nil {
		log.Printf("[cache] set %s: %v", url, err)
	}
}

// Invalidate removes the cached bodies for the given URLs.
func (rc *RedisCache) Invalidate(ctx context.Context, urls ...string) error {
	keys := make([]string, len(urls))
	for i, u := range urls {
		keys[i] = pageKeyPrefix + u
	}
	return rc.client.Del(ctx, keys...).Err()
}
