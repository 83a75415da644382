package constants

type (
	APIStatus   string
	ServiceName string
	CounterName string
)

const (
	APIStatusSuccess APIStatus = "success"
	APIStatusError   APIStatus = "error"

	// Dependency names as they appear in /health "services" and in check
	// ordering (database first, redis second).
	ServiceDatabase ServiceName = "database"
	ServiceRedis    ServiceName = "redis"

	// Counter rows / keys. TotalRequests lives in the Postgres metrics
	// table, CacheHits in Redis, matching the original compose demo.
	CounterTotalRequests CounterName = "total_requests"
	CounterDBConnections CounterName = "db_connections"
	CounterCacheHits     CounterName = "cache_hits"

	// Key prefix for the ephemeral /api/test-cache writes.
	TestCacheKeyPrefix = "test:"

	// TTL in seconds for /api/test-cache writes.
	TestCacheTTLSeconds = 60
)
