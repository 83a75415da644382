package api

import (
	"net/http"
	"time"

	"github.com/45h1f/learn-docker/internal/health"
	"github.com/45h1f/learn-docker/internal/metrics"
	"github.com/45h1f/learn-docker/internal/models/dtos/responses"
	"github.com/45h1f/learn-docker/internal/stats"
)

// HealthHandler handles GET /health.
//
// The response is always 200: a dependency being down makes the document
// degraded, not the endpoint. When collector is non-nil the document also
// carries the process memory figure (the standalone app shows it, the
// orchestration app's health document does not).
func HealthHandler(agg *health.Aggregator, collector *stats.Collector, reg *metrics.Registry, version string, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := agg.Aggregate(r.Context())
		reg.RecordReport(report)

		resp := responses.NewHealthResponse(report, version, upSince)
		if collector != nil {
			snap := collector.Collect(r.Context())
			resp.MemoryMB = responses.RoundMB(snap.MemoryMB())
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
