package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis connects the client backing the dashboard-stats cache and the
// low-stock alert queue. Callers treat Redis as optional — when REDIS_URL is
// empty this is never called and both features stay off — so a reachable
// server is required here: failing fast at startup beats queueing alerts
// into a dead connection.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
