package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store implements usecase.KVStore using Redis. Values are stored without a
// TTL: this is durable record storage, not a cache.
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore creates a new Store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
		prefix: "expense-tracker:",
	}
}

// Get retrieves a value by key. A missing key is absence, not an error.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores a value under key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
