package health

import (
	"context"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/45h1f/learn-docker/internal/constants"
)

// PostgresDependency probes the Postgres pool. Liveness is a driver ping;
// metadata is the server version plus table and connection counts, the same
// facts the dashboard's database card shows.
type PostgresDependency struct {
	db *sqlx.DB
}

func NewPostgresDependency(db *sqlx.DB) *PostgresDependency {
	return &PostgresDependency{db: db}
}

func (p *PostgresDependency) Name() string {
	return string(constants.ServiceDatabase)
}

func (p *PostgresDependency) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *PostgresDependency) Metadata(ctx context.Context) (map[string]string, error) {
	var version string
	if err := p.db.QueryRowxContext(ctx, constants.SelectServerVersion).Scan(&version); err != nil {
		return nil, err
	}

	var tableCount int
	if err := p.db.QueryRowxContext(ctx, constants.CountPublicTables).Scan(&tableCount); err != nil {
		return nil, err
	}

	var connectionCount int
	if err := p.db.QueryRowxContext(ctx, constants.CountActiveConnections).Scan(&connectionCount); err != nil {
		return nil, err
	}

	return map[string]string{
		DetailVersion:         version,
		DetailTableCount:      strconv.Itoa(tableCount),
		DetailConnectionCount: strconv.Itoa(connectionCount),
	}, nil
}
