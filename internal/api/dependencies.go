package api

import (
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/45h1f/learn-docker/internal/common"
	"github.com/45h1f/learn-docker/internal/db/repositories"
	"github.com/45h1f/learn-docker/internal/health"
	"github.com/45h1f/learn-docker/internal/stats"
)

type Repositories struct {
	RequestLog *repositories.RequestLogRepository
	Metrics    *repositories.MetricRepository
}

type Services struct {
	Health    *health.Aggregator
	Stats     *stats.Collector
	Cache     common.Cache
	CacheHits common.CounterStore
	Redis     health.Dependency
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

// InitDependencies wires the orchestration app: both probes feed one
// aggregator (database first, redis second; check order is declaration
// order), the request counter lives in Postgres and the cache-hit counter
// in Redis. The ORM handle may be nil when Postgres was down at startup;
// the request log is then skipped and everything else serves degraded.
func InitDependencies(pool *sqlx.DB, orm *gorm.DB, redisClient *redis.Client) *Dependencies {
	repos := &Repositories{
		Metrics: repositories.NewMetricRepository(pool),
	}
	if orm != nil {
		repos.RequestLog = repositories.NewRequestLogRepository(orm)
	}

	postgresDep := health.NewPostgresDependency(pool)
	redisDep := health.NewRedisDependency(redisClient)
	cacheHits := common.NewRedisCounterStore(redisClient)

	services := &Services{
		Health:    health.NewAggregator(postgresDep, redisDep),
		Stats:     stats.NewCollector(repos.Metrics, cacheHits),
		Cache:     common.NewRedisCacheService(redisClient),
		CacheHits: cacheHits,
		Redis:     redisDep,
	}

	return &Dependencies{
		Repo:     repos,
		Services: services,
	}
}
