package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists values in Redis. Records carry no expiry: a cart
// record is removed explicitly or not at all.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps an existing Redis client. The connection is pinged
// so wiring problems surface at startup rather than on first use.
func NewRedisStore(ctx context.Context, client *redis.Client) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("client must be non-nil")
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{
		rdb: client,
	}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
