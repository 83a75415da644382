package responses

import (
	"time"

	"github.com/45h1f/learn-docker/internal/health"
)

// HealthResponse is the machine-readable health document. The HTTP status is
// always 200; degraded state is carried in the body so orchestration demos
// can watch a service limp rather than disappear.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Version   string            `json:"version"`
	Uptime    string            `json:"uptime"`
	MemoryMB  float64           `json:"memory_mb,omitempty"`
}

// NewHealthResponse folds a report into the wire document. Services carries
// one healthy/unhealthy entry per dependency; with no dependencies it is an
// empty object, not null.
func NewHealthResponse(report health.Report, version string, upSince time.Time) HealthResponse {
	services := make(map[string]string, len(report.Checks))
	for _, check := range report.Checks {
		if check.Reachable {
			services[check.Name] = "healthy"
		} else {
			services[check.Name] = "unhealthy"
		}
	}

	return HealthResponse{
		Status:    string(report.Status),
		Timestamp: report.GeneratedAt,
		Services:  services,
		Version:   version,
		Uptime:    time.Since(upSince).Round(time.Second).String(),
	}
}
