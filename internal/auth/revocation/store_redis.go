// Package revocation tracks revoked access tokens by JWT ID. Tokens are
// short-lived, so entries only need to outlive the longest token TTL.
package revocation

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedTokenKeyPrefix = "trl:jti:"

// RedisList is a Redis-backed token revocation list, shared across instances.
type RedisList struct {
	client *redis.Client
}

// NewRedisList constructs a Redis-backed token revocation list.
func NewRedisList(client *redis.Client) *RedisList {
	return &RedisList{client: client}
}

// Revoke adds a token to the revocation list with a TTL. Uses SET with expiry;
// key existence is what matters.
func (l *RedisList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" {
		return nil
	}
	return l.client.Set(ctx, revokedTokenKeyPrefix+jti, "1", ttl).Err()
}

// IsRevoked checks whether a token is on the revocation list.
func (l *RedisList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	err := l.client.Get(ctx, revokedTokenKeyPrefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
