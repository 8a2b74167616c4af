// Package tokenblacklist implements the access-token blacklist in Redis.
// Logged-out access tokens are stored by jti until their natural expiry,
// after which the key evicts itself via TTL.
package tokenblacklist

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "token_blacklist:"

// Store provides blacklist reads and writes.
type Store struct {
	client *goredis.Client
}

// New creates a blacklist store on top of the given Redis client.
func New(client *goredis.Client) *Store {
	return &Store{client: client}
}

// Add blacklists the token id for the given duration.
// A non-positive ttl means the token already expired; nothing is stored.
func (s *Store) Add(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.client.SetEx(ctx, keyPrefix+tokenID, "true", ttl).Err(); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}
	return nil
}

// Contains reports whether the token id is blacklisted.
func (s *Store) Contains(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, keyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check token blacklist: %w", err)
	}
	return n > 0, nil
}
