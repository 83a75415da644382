package responses

import (
	"time"

	"github.com/45h1f/learn-docker/internal/health"
	"github.com/45h1f/learn-docker/internal/stats"
)

// StatsResponse merges the detailed health report with the process snapshot:
// one document with everything the dashboard shows. Per-dependency metadata
// (server versions, table/key counts, memory) rides along inside Checks.
type StatsResponse struct {
	Status        string         `json:"status"`
	Checks        []health.Check `json:"checks"`
	TotalRequests int64          `json:"total_requests"`
	CacheHits     int64          `json:"cache_hits"`
	MemoryUsedMB  float64        `json:"memory_used_mb"`
	CPUCount      int            `json:"cpu_count"`
	Timestamp     time.Time      `json:"timestamp"`
}

func NewStatsResponse(report health.Report, snap stats.Snapshot) StatsResponse {
	return StatsResponse{
		Status:        string(report.Status),
		Checks:        report.Checks,
		TotalRequests: snap.RequestCount,
		CacheHits:     snap.CacheHitCount,
		MemoryUsedMB:  RoundMB(snap.MemoryMB()),
		CPUCount:      snap.CPUCount,
		Timestamp:     report.GeneratedAt,
	}
}
