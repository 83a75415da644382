package gorm

import "time"

// Metric is a named application counter. The unique index on metric_name
// lets the seed inserts stay idempotent across restarts.
type Metric struct {
	ID          int       `gorm:"column:id;primaryKey;autoIncrement"`
	MetricName  string    `gorm:"column:metric_name;type:varchar(100);uniqueIndex"`
	MetricValue int64     `gorm:"column:metric_value;default:0"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Metric) TableName() string {
	return "metrics"
}
