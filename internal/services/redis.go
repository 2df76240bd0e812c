package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"oleander_app_echo/internal/app"
)

// RedisCache wraps a Redis client with JSON encoded values
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to redisURL and verifies the connection
func NewRedisCache(redisURL string, logger *zap.Logger) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	logger.Info("Redis connection established", zap.String("addr", opt.Addr))
	return &RedisCache{client: client}, nil
}

// Set stores a value in cache with expiration
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, expiration).Err()
}

// Get retrieves a value from cache. A missing key returns redis.Nil.
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Delete removes a key from cache
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}

const sessionKeyPrefix = "oleander:view:"

// RedisSessionStore keeps view state in Redis and relies on key expiry for
// cleanup, so it needs no Sweeper.
type RedisSessionStore struct {
	cache *RedisCache
	ttl   time.Duration
}

// NewRedisSessionStore stores entries for ttl after their last save.
func NewRedisSessionStore(cache *RedisCache, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{cache: cache, ttl: ttl}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (s *RedisSessionStore) Load(ctx context.Context, id string) (app.State, error) {
	var state app.State
	if err := s.cache.Get(ctx, sessionKey(id), &state); err != nil {
		if errors.Is(err, redis.Nil) {
			return app.State{}, ErrSessionNotFound
		}
		return app.State{}, fmt.Errorf("load view session %s: %w", id, err)
	}
	if state.Errors == nil {
		state.Errors = app.ErrorMap{}
	}
	return state, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, id string, state app.State) error {
	if err := s.cache.Set(ctx, sessionKey(id), state, s.ttl); err != nil {
		return fmt.Errorf("save view session %s: %w", id, err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, sessionKey(id))
}
