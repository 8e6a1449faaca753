package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// CacheRedisClient is the RedisClient backed by a real Redis server.
type CacheRedisClient struct {
	client *redis.Client
}

// NewCacheRedisClient wraps client and checks the connection.
func NewCacheRedisClient(ctx context.Context, client *redis.Client) (*CacheRedisClient, error) {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("could not connect to Redis: %w", err)
	}
	log.Println("[CacheRedisClient] Connected to Redis")

	return &CacheRedisClient{client: client}, nil
}

// Set sets a key-value pair in Redis
func (r *CacheRedisClient) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Get retrieves the value for a given key from Redis
func (r *CacheRedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return val, err
}

// Del removes a key
func (r *CacheRedisClient) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Keys lists keys matching a glob pattern using SCAN so large keyspaces do
// not block the server.
func (r *CacheRedisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan keys %q: %w", pattern, err)
	}
	return keys, nil
}

// Ping checks the connection
func (r *CacheRedisClient) Ping(ctx context.Context) error {
	_, err := r.client.Ping(ctx).Result()
	return err
}

// Close releases the underlying connection pool.
func (r *CacheRedisClient) Close() error {
	return r.client.Close()
}
