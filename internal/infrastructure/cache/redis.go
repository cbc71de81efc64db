// Package cache opens the redis connection backing the idempotency
// middleware. Redis is optional for this service: when no address is
// configured, callers skip this package entirely and mutating requests are
// simply not deduped.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// OpenRedis connects and pings within a 5s budget, so a misconfigured
// address fails startup fast instead of surfacing on the first request.
func OpenRedis(addr string, db int) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return r, nil
}
