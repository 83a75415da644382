package constants

const (
	SelectServerVersion = `
	SELECT version()
	`

	CountPublicTables = `
	SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = 'public'
	`

	CountActiveConnections = `
	SELECT COUNT(*) FROM pg_stat_activity
	`

	CountRequestRows = `
	SELECT COUNT(*) FROM requests
	`

	IncrementMetric = `
	UPDATE metrics SET metric_value = metric_value + 1, updated_at = CURRENT_TIMESTAMP
	WHERE metric_name = $1
	RETURNING metric_value
	`

	SelectMetricValue = `
	SELECT metric_value FROM metrics WHERE metric_name = $1
	`
)
