package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const blacklistPrefix = "blacklist:refresh:"

// TokenBlacklist is the revocation list for refresh tokens. A revoked token
// stays listed until its natural expiry, after which the key lapses on its own.
type TokenBlacklist struct {
	Client *redis.Client
}

func (b *TokenBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return b.Client.Set(ctx, blacklistPrefix+token, "1", ttl).Err()
}

func (b *TokenBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := b.Client.Exists(ctx, blacklistPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
