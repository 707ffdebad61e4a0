package middleware

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const revokedTokenPrefix = "auth:revoked:"

// RedisDenylist looks revoked token ids up in Redis. The user service writes
// auth:revoked:<jti> on logout with the token's remaining lifetime as TTL.
type RedisDenylist struct {
	client redis.Cmdable
}

// NewRedisDenylist creates a denylist backed by client.
func NewRedisDenylist(client redis.Cmdable) *RedisDenylist {
	return &RedisDenylist{client: client}
}

var _ TokenDenylist = (*RedisDenylist)(nil)

// IsRevoked reports whether tokenID has been revoked.
func (d *RedisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, revokedTokenPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Ping checks Redis is reachable.
func (d *RedisDenylist) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}
