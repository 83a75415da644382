// Package stats assembles point-in-time process metrics. A snapshot is a
// read-only view: collecting one never mutates the counters it reads.
package stats

import (
	"context"
	"runtime"
	"time"

	"github.com/45h1f/learn-docker/internal/common"
	"github.com/45h1f/learn-docker/internal/constants"
	"github.com/45h1f/learn-docker/internal/logging"
)

// Snapshot captures process metrics and the request/cache-hit counters at a
// single instant.
type Snapshot struct {
	MemoryUsedBytes uint64    `json:"memory_used_bytes"`
	CPUCount        int       `json:"cpu_count"`
	RequestCount    int64     `json:"request_count"`
	CacheHitCount   int64     `json:"cache_hit_count"`
	CapturedAt      time.Time `json:"captured_at"`
}

// MemoryMB returns the memory figure in megabytes for display.
func (s Snapshot) MemoryMB() float64 {
	return float64(s.MemoryUsedBytes) / 1024 / 1024
}

// Collector reads the host facts and the injected counter stores. Either
// store may be nil when the app has no such counter; a store read failure
// leaves the counter at zero, it never fails the snapshot.
type Collector struct {
	requests  common.CounterStore
	cacheHits common.CounterStore
}

func NewCollector(requests, cacheHits common.CounterStore) *Collector {
	return &Collector{requests: requests, cacheHits: cacheHits}
}

// Collect assembles a fresh snapshot. Memory and CPU figures are best-effort
// platform values from the Go runtime.
func (c *Collector) Collect(ctx context.Context) Snapshot {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	snap := Snapshot{
		MemoryUsedBytes: mem.Alloc,
		CPUCount:        runtime.NumCPU(),
		CapturedAt:      time.Now().UTC(),
	}

	if c.requests != nil {
		v, err := c.requests.Value(ctx, string(constants.CounterTotalRequests))
		if err != nil {
			logging.Warn("Snapshot: request counter unavailable", "error", err.Error())
		} else {
			snap.RequestCount = v
		}
	}

	if c.cacheHits != nil {
		v, err := c.cacheHits.Value(ctx, string(constants.CounterCacheHits))
		if err != nil {
			logging.Warn("Snapshot: cache hit counter unavailable", "error", err.Error())
		} else {
			snap.CacheHitCount = v
		}
	}

	return snap
}
