package api

import (
	"net/http"

	"github.com/45h1f/learn-docker/internal/common"
	"github.com/45h1f/learn-docker/internal/config"
	"github.com/45h1f/learn-docker/internal/models/dtos/responses"
	"github.com/45h1f/learn-docker/internal/stats"
)

// InfoHandler handles GET /info: process and host metadata for diagnostics.
// withEndpoints adds the configured dependency endpoints, which only the
// orchestration app has.
func InfoHandler(cfg config.Config, collector *stats.Collector, withEndpoints bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := collector.Collect(r.Context())
		resp := responses.NewInfoResponse(cfg.Version, cfg.Environment, common.Hostname(), cfg.Debug, snap)

		if withEndpoints {
			resp.DBHost = cfg.DB.Host
			resp.DBName = cfg.DB.Name
			resp.RedisHost = cfg.Redis.Host
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
