package common

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/45h1f/learn-docker/internal/config"
	"github.com/45h1f/learn-docker/internal/logging"
)

// NewRedisClient builds the shared Redis client. The initial ping is only
// informational: an unreachable cache at startup still returns a client, the
// pool reconnects on its own and the health report shows the outage.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Warn("Redis not reachable at startup", "addr", cfg.Addr(), "error", err.Error())
		return client
	}

	logging.Info("Connected to Redis", "addr", cfg.Addr())
	return client
}
