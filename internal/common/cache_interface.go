package common

import "time"

// Cache is the contract the cache implementations share, so handlers can be
// tested against the in-memory implementation while the webapp runs Redis.
type Cache interface {
	// Set stores a value under key for the given duration.
	Set(key string, value interface{}, duration time.Duration)

	// Get retrieves a value by key. Returns the value and true if found,
	// nil and false otherwise.
	Get(key string) (interface{}, bool)

	// Delete removes a value by key.
	Delete(key string)

	// GetOrSet retrieves a value, or loads and stores it if absent.
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Close releases any underlying connections.
	Close() error
}
