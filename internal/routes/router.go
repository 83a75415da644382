package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/45h1f/learn-docker/internal/api"
	"github.com/45h1f/learn-docker/internal/common"
	"github.com/45h1f/learn-docker/internal/config"
	"github.com/45h1f/learn-docker/internal/health"
	"github.com/45h1f/learn-docker/internal/logging"
	"github.com/45h1f/learn-docker/internal/metrics"
	"github.com/45h1f/learn-docker/internal/middleware"
	"github.com/45h1f/learn-docker/internal/stats"
	"github.com/45h1f/learn-docker/internal/ui"
)

// RegisterWebappRoutes wires the full-stack app: the dashboard, the health
// and info endpoints, and the rate-limited diagnostics API. Every request
// through this router is audited into Postgres and counted.
func RegisterWebappRoutes(cfg config.Config, deps *api.Dependencies, reg *metrics.Registry, upSince time.Time) http.Handler {
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(reg))
	r.Use(middleware.RecoverMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	}))

	r.Use(middleware.RequestAudit(deps.Repo.RequestLog, deps.Repo.Metrics))

	dashboard := ui.NewDashboard(cfg, deps.Services.Health, deps.Services.Stats, deps.Services.CacheHits, reg, upSince)
	r.Get("/", dashboard.Home)
	r.Get("/health", api.HealthHandler(deps.Services.Health, nil, reg, cfg.Version, upSince))
	r.Get("/info", api.InfoHandler(cfg, deps.Services.Stats, true))

	RegisterAPIRoutes(r, deps, reg)

	logging.Info("Webapp router initialized with metrics and audit middleware")
	return r
}

// RegisterSysinfoRoutes wires the single-container app. Requests are counted
// in process memory; there is no database or cache behind this binary, so
// the health report carries no dependency checks.
func RegisterSysinfoRoutes(cfg config.Config, reg *metrics.Registry, upSince time.Time) http.Handler {
	r := chi.NewRouter()

	counter := common.NewMemoryCounterStore()
	collector := stats.NewCollector(counter, nil)

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(reg))
	r.Use(middleware.RecoverMiddleware)
	r.Use(middleware.RequestAudit(nil, counter))

	page := ui.NewSysinfoPage(cfg, collector)

	r.Get("/", page.Home)
	r.Get("/health", api.HealthHandler(health.NewAggregator(), collector, reg, cfg.Version, upSince))
	r.Get("/info", api.InfoHandler(cfg, collector, false))

	logging.Info("Sysinfo router initialized")
	return r
}
