package common

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// CounterStore is a monotonically-increasing named counter. Request handlers
// receive a store explicitly instead of mutating package-level state;
// implementations must increment atomically so concurrent requests never
// lose updates.
type CounterStore interface {
	Increment(ctx context.Context, name string) (int64, error)
	Value(ctx context.Context, name string) (int64, error)
}

// RedisCounterStore keeps counters in Redis via INCR, the compose demo's
// home for the cache-hit counter.
type RedisCounterStore struct {
	client *redis.Client
}

var _ CounterStore = (*RedisCounterStore)(nil)

func NewRedisCounterStore(client *redis.Client) *RedisCounterStore {
	return &RedisCounterStore{client: client}
}

func (s *RedisCounterStore) Increment(ctx context.Context, name string) (int64, error) {
	return s.client.Incr(ctx, name).Result()
}

// Value returns the counter, treating a missing key as zero.
func (s *RedisCounterStore) Value(ctx context.Context, name string) (int64, error) {
	v, err := s.client.Get(ctx, name).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(v, 10, 64)
}
