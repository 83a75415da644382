package api

import (
	"net/http"

	"github.com/45h1f/learn-docker/internal/health"
	"github.com/45h1f/learn-docker/internal/metrics"
	"github.com/45h1f/learn-docker/internal/models/dtos/responses"
	"github.com/45h1f/learn-docker/internal/stats"
)

// StatsHandler handles GET /api/stats, the dashboard's polling source: the
// detailed dependency report and the counter snapshot in one document.
func StatsHandler(agg *health.Aggregator, collector *stats.Collector, reg *metrics.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := agg.AggregateDetail(r.Context())
		reg.RecordReport(report)

		snap := collector.Collect(r.Context())
		writeJSON(w, http.StatusOK, responses.NewStatsResponse(report, snap))
	}
}
