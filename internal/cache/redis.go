// internal/cache/redis.go

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// redisStore implements Store on top of a shared redis client
type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a redis-backed Store. All keys are namespaced with
// the given prefix so multiple stores can share one redis database.
func NewRedisStore(client *redis.Client, prefix string) Store {
	return &redisStore{client: client, prefix: prefix}
}

func (s *redisStore) key(key string) string {
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

func (s *redisStore) Put(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key: %w", err)
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.key(key)).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get key: %w", err)
	}
	return value, nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}
	return nil
}

func (s *redisStore) Increment(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	k := s.key(key)

	count, err := s.client.Incr(ctx, k).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment key: %w", err)
	}

	// First increment created the key; attach the window expiry
	if count == 1 && ttl > 0 {
		if err := s.client.Expire(ctx, k, ttl).Err(); err != nil {
			return 0, fmt.Errorf("failed to set expiry: %w", err)
		}
	}

	return count, nil
}
