// Package health implements the dependency probes and the status
// aggregation behind /health, /api/stats and the dashboard: each configured
// dependency is probed independently, failures are reported as data, and a
// single unreachable dependency degrades the overall verdict while the
// service keeps serving.
package health

import (
	"context"
	"time"
)

// Status is the overall verdict of a health report.
type Status string

const (
	StatusHealthy  Status = "healthy"
	StatusDegraded Status = "degraded"
)

// Detail keys the concrete dependencies populate. Consumers render whatever
// subset is present; absent keys mean the dependency did not expose the fact.
const (
	DetailVersion         = "version"
	DetailTableCount      = "table_count"
	DetailConnectionCount = "connection_count"
	DetailMemoryUsed      = "memory_used"
	DetailKeyCount        = "key_count"
)

// Dependency is the capability a downstream service must expose to be
// probed. Ping is a cheap liveness check; Metadata fetches whatever the
// dependency reports about itself (version, memory usage, counts).
type Dependency interface {
	Name() string
	Ping(ctx context.Context) error
	Metadata(ctx context.Context) (map[string]string, error)
}

// Check is the outcome of one probe against one dependency. Constructed
// fresh on every probe and never mutated afterwards.
type Check struct {
	Name      string            `json:"name"`
	Reachable bool              `json:"reachable"`
	Detail    map[string]string `json:"detail,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// Report aggregates the checks of all configured dependencies. Checks keep
// dependency declaration order. Status is degraded iff at least one check is
// unreachable; a report with no checks is healthy.
type Report struct {
	Status      Status    `json:"status"`
	Checks      []Check   `json:"checks"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Degraded reports whether any check failed.
func (r Report) Degraded() bool {
	return r.Status == StatusDegraded
}

func statusOf(checks []Check) Status {
	for _, c := range checks {
		if !c.Reachable {
			return StatusDegraded
		}
	}
	return StatusHealthy
}
