package common

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryCacheService is the in-process Cache implementation, used wherever a
// Redis server is not available; the webapp runs the Redis implementation.
type MemoryCacheService struct {
	cache *cache.Cache
}

var _ Cache = (*MemoryCacheService)(nil)

func NewMemoryCacheService(defaultExpiration, cleanupInterval time.Duration) *MemoryCacheService {
	return &MemoryCacheService{cache: cache.New(defaultExpiration, cleanupInterval)}
}

func (m *MemoryCacheService) Set(key string, value interface{}, duration time.Duration) {
	m.cache.Set(key, value, duration)
}

func (m *MemoryCacheService) Get(key string) (interface{}, bool) {
	return m.cache.Get(key)
}

func (m *MemoryCacheService) Delete(key string) {
	m.cache.Delete(key)
}

func (m *MemoryCacheService) GetOrSet(
	key string,
	duration time.Duration,
	loader func() (any, error),
) (interface{}, error) {
	if val, found := m.Get(key); found {
		return val, nil
	}

	val, err := loader()
	if err != nil {
		return nil, err
	}

	m.Set(key, val, duration)
	return val, nil
}

// Close is a no-op for the in-memory cache.
func (m *MemoryCacheService) Close() error {
	return nil
}
