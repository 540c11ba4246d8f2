package redisx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// New returns a client, or nil when no address is configured. The
// cache is optional; every helper tolerates a nil client so the app
// runs fully without redis.
func New(addr string) *redis.Client {
	if addr == "" {
		return nil
	}
	r := redis.NewClient(&redis.Options{Addr: addr})
	_ = r.WithTimeout(2 * time.Second)
	return r
}

// Get returns the cached value and whether it was present. Errors are
// treated as a miss; the cache is best-effort.
func Get(ctx context.Context, rdb *redis.Client, key string) (string, bool) {
	if rdb == nil {
		return "", false
	}
	s, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return s, true
}

func Set(ctx context.Context, rdb *redis.Client, key, value string, ttl time.Duration) {
	if rdb == nil {
		return
	}
	_ = rdb.Set(ctx, key, value, ttl).Err()
}

func Del(ctx context.Context, rdb *redis.Client, keys ...string) {
	if rdb == nil {
		return
	}
	_ = rdb.Del(ctx, keys...).Err()
}
