package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/45h1f/learn-docker/internal/common"
	"github.com/45h1f/learn-docker/internal/constants"
)

// MetricRepository handles metrics table operations. It satisfies
// common.CounterStore so the request counter can live in Postgres while the
// cache-hit counter lives in Redis.
type MetricRepository struct {
	db *sqlx.DB
}

func NewMetricRepository(db *sqlx.DB) *MetricRepository {
	return &MetricRepository{db}
}

var _ common.CounterStore = (*MetricRepository)(nil)

// Increment bumps the named counter row atomically and returns the new value.
func (r *MetricRepository) Increment(ctx context.Context, name string) (int64, error) {
	var value int64
	if err := r.db.QueryRowxContext(ctx, constants.IncrementMetric, name).Scan(&value); err != nil {
		return 0, err
	}
	return value, nil
}

// Value reads the named counter. A missing row reads as zero, the state of a
// database that has not been seeded yet.
func (r *MetricRepository) Value(ctx context.Context, name string) (int64, error) {
	var value int64
	err := r.db.QueryRowxContext(ctx, constants.SelectMetricValue, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return value, nil
}

// RequestRowCount counts the audited request rows.
func (r *MetricRepository) RequestRowCount(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowxContext(ctx, constants.CountRequestRows).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ServerVersion asks the database to describe itself, doubling as a live
// round-trip check for the diagnostic endpoint.
func (r *MetricRepository) ServerVersion(ctx context.Context) (string, error) {
	var version string
	if err := r.db.QueryRowxContext(ctx, constants.SelectServerVersion).Scan(&version); err != nil {
		return "", err
	}
	return version, nil
}
