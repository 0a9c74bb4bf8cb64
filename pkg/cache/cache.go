package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"xmrtdash/pkg/log"
)

const connectTimeout = 5 * time.Second

// Pinger is the liveness capability the status aggregator depends on.
// Tests substitute a stub; production uses *Cache.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Cache wraps the Redis connection. The dashboard only ever checks liveness
// through it; no status or agent data is read from or written to Redis.
type Cache struct {
	client *redis.Client
}

// Connect dials Redis at addr and verifies the connection with a PING.
// On failure the caller is expected to continue without a cache handle and
// report the cache as disconnected.
func Connect(ctx context.Context, addr string) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	log.Info().Str("addr", addr).Msg("Redis connection established")
	return &Cache{client: client}, nil
}

// Ping checks liveness of the Redis connection.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}
