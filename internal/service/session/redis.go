package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// RedisStore keeps session id -> user id with a TTL, so expiry needs no sweeper.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Create(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	sid := uuid.New().String()
	if err := s.client.Set(ctx, keyPrefix+sid, userID, ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return sid, nil
}

func (s *RedisStore) Get(ctx context.Context, sid string) (string, error) {
	userID, err := s.client.Get(ctx, keyPrefix+sid).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load session: %w", err)
	}
	return userID, nil
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, keyPrefix+sid).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
