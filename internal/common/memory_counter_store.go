package common

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// MemoryCounterStore keeps counters in process, for the sysinfo app and for
// tests. go-cache serializes Add/Increment internally, so concurrent
// increments never lose updates.
type MemoryCounterStore struct {
	cache *cache.Cache
}

var _ CounterStore = (*MemoryCounterStore)(nil)

func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{cache: cache.New(cache.NoExpiration, 0)}
}

func (s *MemoryCounterStore) Increment(ctx context.Context, name string) (int64, error) {
	// Add only succeeds for the first caller, so the zero value is
	// established exactly once.
	_ = s.cache.Add(name, int64(0), cache.NoExpiration)
	return s.cache.IncrementInt64(name, 1)
}

func (s *MemoryCounterStore) Value(ctx context.Context, name string) (int64, error) {
	v, found := s.cache.Get(name)
	if !found {
		return 0, nil
	}
	n, ok := v.(int64)
	if !ok {
		return 0, nil
	}
	return n, nil
}
