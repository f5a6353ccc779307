// Package redis holds the redis-backed storage backends. Unlike the memory
// package these survive a process restart and expire entries on their own.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const bannedTokenKeyPrefix = "banned_token:"

// BannedTokenStore keeps revoked tokens in redis. Each entry carries a TTL
// equal to the token TTL: once the token itself has expired the ban record
// is useless and redis drops it, so the set cannot grow without bound.
type BannedTokenStore struct {
	client   *redis.Client
	tokenTTL time.Duration
}

func NewBannedTokenStore(client *redis.Client, tokenTTL time.Duration) *BannedTokenStore {
	return &BannedTokenStore{client: client, tokenTTL: tokenTTL}
}

func (s *BannedTokenStore) key(token string) string {
	return bannedTokenKeyPrefix + token
}

// Add is idempotent; re-banning refreshes the TTL, which is harmless since
// the original token has the same expiry.
func (s *BannedTokenStore) Add(token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.Set(ctx, s.key(token), "1", s.tokenTTL).Err(); err != nil {
		return fmt.Errorf("failed to ban token: %w", err)
	}
	return nil
}

func (s *BannedTokenStore) Contains(token string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Exists(ctx, s.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check banned token: %w", err)
	}
	return n > 0, nil
}
