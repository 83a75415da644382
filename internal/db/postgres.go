package db

import (
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/45h1f/learn-docker/internal/config"
	"github.com/45h1f/learn-docker/internal/logging"
)

const (
	connectAttempts = 10
	connectBackoff  = 500 * time.Millisecond
)

// Connect opens the Postgres pool, waiting for the database container to
// finish starting. Compose regularly brings the app up first, so the early
// attempts are expected to fail.
//
// When every attempt fails the pool is returned in a lazy state instead of
// an error: endpoints report the database as unreachable until it comes up,
// and the process itself stays alive.
func Connect(cfg config.DBConfig) (*sqlx.DB, error) {
	dsn := cfg.DSN()

	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		var pool *sqlx.DB
		pool, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			logging.Info("Connected to Postgres", "host", cfg.Host, "database", cfg.Name)
			return pool, nil
		}
		logging.Warn("Postgres not ready, retrying", "attempt", attempt, "error", err.Error())
		time.Sleep(connectBackoff)
	}

	logging.Warn("Postgres still unreachable, continuing with a lazy pool", "error", err.Error())
	return sqlx.Open("postgres", dsn)
}
