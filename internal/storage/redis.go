package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps session token -> user id mappings with a TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *RedisSessionStore) Create(ctx context.Context, userID int) (string, error) {
	token := uuid.NewString()
	if err := s.Client.Set(ctx, sessionKey(token), strconv.Itoa(userID), s.TTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (int, error) {
	value, err := s.Client.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(value)
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.Client.Del(ctx, sessionKey(token)).Err()
}
