package ui

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/45h1f/learn-docker/internal/common"
	"github.com/45h1f/learn-docker/internal/config"
	"github.com/45h1f/learn-docker/internal/constants"
	"github.com/45h1f/learn-docker/internal/health"
	"github.com/45h1f/learn-docker/internal/logging"
	"github.com/45h1f/learn-docker/internal/metrics"
	"github.com/45h1f/learn-docker/internal/stats"
)

// Shown on the page wherever a dependency did not report a metadata fact.
const unavailable = "unavailable"

// Dashboard renders the compose demo's home page: one card per service,
// counter tiles, and a system-information block.
type Dashboard struct {
	cfg       config.Config
	agg       *health.Aggregator
	collector *stats.Collector
	cacheHits common.CounterStore
	reg       *metrics.Registry
	upSince   time.Time
}

func NewDashboard(cfg config.Config, agg *health.Aggregator, collector *stats.Collector, cacheHits common.CounterStore, reg *metrics.Registry, upSince time.Time) *Dashboard {
	return &Dashboard{
		cfg:       cfg,
		agg:       agg,
		collector: collector,
		cacheHits: cacheHits,
		reg:       reg,
		upSince:   upSince,
	}
}

// Home probes the dependencies and renders the overview.
func (d *Dashboard) Home(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	// The cache-hit tile counts page views, not cache lookups.
	if d.cacheHits != nil {
		if _, err := d.cacheHits.Increment(ctx, string(constants.CounterCacheHits)); err != nil {
			logging.Warn("Cache hit counter unavailable", "error", err.Error())
		}
	}

	report := d.agg.AggregateDetail(ctx)
	d.reg.RecordReport(report)
	snap := d.collector.Collect(ctx)

	render(w, dashboardTmpl, d.pageData(report, snap, start))
}

func (d *Dashboard) pageData(report health.Report, snap stats.Snapshot, start time.Time) map[string]interface{} {
	dbCheck := checkByName(report, string(constants.ServiceDatabase))
	redisCheck := checkByName(report, string(constants.ServiceRedis))

	dbStatus, dbClass := badge(dbCheck)
	redisStatus, redisClass := badge(redisCheck)

	return map[string]interface{}{
		"Hostname":    common.Hostname(),
		"Environment": d.cfg.Environment,
		"Version":     d.cfg.Version,
		"Uptime":      time.Since(d.upSince).Round(time.Second).String(),

		"DBStatus":      dbStatus,
		"DBStatusClass": dbClass,
		"DBHost":        d.cfg.DB.Host,
		"DBName":        d.cfg.DB.Name,
		"TableCount":    detailOr(dbCheck, health.DetailTableCount),

		"RedisStatus":      redisStatus,
		"RedisStatusClass": redisClass,
		"RedisHost":        d.cfg.Redis.Host,
		"RedisMemory":      detailOr(redisCheck, health.DetailMemoryUsed),
		"RedisKeys":        detailOr(redisCheck, health.DetailKeyCount),

		"TotalRequests": snap.RequestCount,
		"DBConnections": detailOr(dbCheck, health.DetailConnectionCount),
		"CacheHits":     snap.CacheHitCount,
		"ResponseTime":  common.ResponseTime(start),

		"SystemInfo": d.systemInfo(dbStatus, redisStatus, snap),
		"Timestamp":  time.Now().Format("2006-01-02 15:04:05"),
	}
}

func (d *Dashboard) systemInfo(dbStatus, redisStatus string, snap stats.Snapshot) string {
	return fmt.Sprintf(`Environment Variables:
DB_HOST: %s
DB_NAME: %s
REDIS_HOST: %s
ENVIRONMENT: %s

Container Information:
Hostname: %s
Go Version: %s
CPU Count: %d

Service Status:
Database: %s
Redis: %s`,
		d.cfg.DB.Host, d.cfg.DB.Name, d.cfg.Redis.Host, d.cfg.Environment,
		common.Hostname(), runtime.Version(), snap.CPUCount,
		dbStatus, redisStatus)
}

func checkByName(report health.Report, name string) health.Check {
	for _, c := range report.Checks {
		if c.Name == name {
			return c
		}
	}
	return health.Check{Name: name}
}

// badge maps a probe outcome onto the status pill shown on a service card.
func badge(c health.Check) (label, class string) {
	if c.Reachable {
		return "CONNECTED", "status-healthy"
	}
	return "DISCONNECTED", "status-error"
}

func detailOr(c health.Check, key string) string {
	if v, ok := c.Detail[key]; ok && v != "" {
		return v
	}
	return unavailable
}
