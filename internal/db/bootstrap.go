package db

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/45h1f/learn-docker/internal/constants"
	"github.com/45h1f/learn-docker/internal/logging"
	gormModels "github.com/45h1f/learn-docker/internal/models/gorm"
)

// Bootstrap creates the demo schema and seeds the counter rows. It runs on
// every start and both steps are idempotent; the caller decides whether a
// failure is fatal or the app continues degraded.
func Bootstrap(orm *gorm.DB) error {
	if err := orm.AutoMigrate(&gormModels.RequestLog{}, &gormModels.Metric{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	seeds := []gormModels.Metric{
		{MetricName: string(constants.CounterTotalRequests)},
		{MetricName: string(constants.CounterDBConnections)},
	}
	err := orm.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "metric_name"}},
		DoNothing: true,
	}).Create(&seeds).Error
	if err != nil {
		return fmt.Errorf("seed metrics: %w", err)
	}

	logging.Info("Database initialized")
	return nil
}
