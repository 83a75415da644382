package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/45h1f/learn-docker/internal/config"
	"github.com/45h1f/learn-docker/internal/logging"
)

// OpenORM opens a GORM handle on the same database the sqlx pool uses. The
// ORM side owns schema bootstrap and the request log; raw queries stay on
// sqlx.
func OpenORM(cfg config.DBConfig) (*gorm.DB, error) {
	orm, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	logging.Info("Connected to Postgres via GORM")
	return orm, nil
}
