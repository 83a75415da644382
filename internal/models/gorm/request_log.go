package gorm

import "time"

// RequestLog is one audited HTTP request. Rows are append-only; nothing in
// the app updates or deletes them.
type RequestLog struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	Timestamp time.Time `gorm:"column:timestamp;autoCreateTime"`
	IPAddress string    `gorm:"column:ip_address;type:varchar(45)"`
	UserAgent string    `gorm:"column:user_agent;type:text"`
	Endpoint  string    `gorm:"column:endpoint;type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (RequestLog) TableName() string {
	return "requests"
}
