package repositories

import (
	"context"

	gormlib "gorm.io/gorm"

	"github.com/45h1f/learn-docker/internal/models/gorm"
)

// RequestLogRepository handles requests table operations. Rows are written
// by the audit middleware and only ever read back in aggregate.
type RequestLogRepository struct {
	db *gormlib.DB
}

// NewRequestLogRepository creates a new request log repository
func NewRequestLogRepository(db *gormlib.DB) *RequestLogRepository {
	return &RequestLogRepository{db: db}
}

// Insert appends one audit row.
func (r *RequestLogRepository) Insert(ctx context.Context, entry *gorm.RequestLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
