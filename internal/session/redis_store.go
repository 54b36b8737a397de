package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"chefbook/internal/models"
)

// RedisStore is a Redis-backed Store for deployments that run more than
// one instance behind a load balancer. It keeps the same contract as
// Registry: resolve of an unknown token yields (nil, nil), revoke of an
// unknown token is a no-op. Sessions persist until revoked.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "session:",
	}
}

func (s *RedisStore) key(token string) string {
	return s.prefix + token
}

// Issue generates a fresh token and stores the chef under it.
func (s *RedisStore) Issue(chef models.Chef) (string, error) {
	token := uuid.New().String()

	data, err := json.Marshal(chef)
	if err != nil {
		return "", fmt.Errorf("session: failed to marshal chef: %w", err)
	}

	if err := s.client.Set(context.Background(), s.key(token), data, 0).Err(); err != nil {
		return "", fmt.Errorf("session: failed to store session: %w", err)
	}
	return token, nil
}

// Resolve returns the chef a token authenticates, or (nil, nil) when
// the token is unknown.
func (s *RedisStore) Resolve(token string) (*models.Chef, error) {
	val, err := s.client.Get(context.Background(), s.key(token)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: failed to load session: %w", err)
	}

	var chef models.Chef
	if err := json.Unmarshal([]byte(val), &chef); err != nil {
		return nil, fmt.Errorf("session: failed to unmarshal chef: %w", err)
	}
	return &chef, nil
}

// Revoke deletes the token's session. Unknown tokens are ignored.
func (s *RedisStore) Revoke(token string) error {
	return s.client.Del(context.Background(), s.key(token)).Err()
}
