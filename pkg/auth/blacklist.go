package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Blacklist tracks revoked tokens until their natural expiry.
type Blacklist interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	Contains(ctx context.Context, token string) (bool, error)
}

type RedisBlacklist struct {
	rdb *redis.Client
}

func NewRedisBlacklist(rdb *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{rdb: rdb}
}

func (b *RedisBlacklist) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to revoke
	}
	return b.rdb.Set(ctx, "blacklist:"+token, 1, ttl).Err()
}

func (b *RedisBlacklist) Contains(ctx context.Context, token string) (bool, error) {
	n, err := b.rdb.Exists(ctx, "blacklist:"+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
