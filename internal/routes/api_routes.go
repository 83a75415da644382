package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/45h1f/learn-docker/internal/api"
	"github.com/45h1f/learn-docker/internal/metrics"
	"github.com/45h1f/learn-docker/internal/middleware"
)

// RegisterAPIRoutes registers the diagnostics endpoints under /api.
// This keeps API route registration separate from the main router setup.
// The group is rate limited so a stuck dashboard auto-refresh cannot hammer
// the backing services.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, reg *metrics.Registry) {
	r.Route("/api", func(diag chi.Router) {
		diag.Use(middleware.RateLimitMiddleware)

		diag.Get("/test-db", api.TestDBHandler(deps.Repo.Metrics))
		diag.Get("/test-cache", api.TestCacheHandler(deps.Services.Cache, deps.Services.Redis))
		diag.Get("/stats", api.StatsHandler(deps.Services.Health, deps.Services.Stats, reg))
	})
}
