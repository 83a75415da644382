package responses

import (
	"time"

	"github.com/45h1f/learn-docker/internal/constants"
)

// TestDBResponse reports a successful database round trip.
type TestDBResponse struct {
	Status          string    `json:"status"`
	DatabaseVersion string    `json:"database_version"`
	TotalRequests   int64     `json:"total_requests"`
	Timestamp       time.Time `json:"timestamp"`
}

func NewTestDBResponse(databaseVersion string, totalRequests int64) TestDBResponse {
	return TestDBResponse{
		Status:          string(constants.APIStatusSuccess),
		DatabaseVersion: databaseVersion,
		TotalRequests:   totalRequests,
		Timestamp:       time.Now().UTC(),
	}
}

// TestCacheResponse reports a successful cache write/read round trip plus
// the server metadata that came back with it.
type TestCacheResponse struct {
	Status         string    `json:"status"`
	TestKey        string    `json:"test_key"`
	TestValue      string    `json:"test_value"`
	RetrievedValue string    `json:"retrieved_value"`
	RedisVersion   string    `json:"redis_version"`
	MemoryUsage    string    `json:"memory_usage"`
	TotalKeys      int64     `json:"total_keys"`
	Timestamp      time.Time `json:"timestamp"`
}

func NewTestCacheResponse(key, wrote, read, redisVersion, memoryUsage string, totalKeys int64) TestCacheResponse {
	return TestCacheResponse{
		Status:         string(constants.APIStatusSuccess),
		TestKey:        key,
		TestValue:      wrote,
		RetrievedValue: read,
		RedisVersion:   redisVersion,
		MemoryUsage:    memoryUsage,
		TotalKeys:      totalKeys,
		Timestamp:      time.Now().UTC(),
	}
}

// ErrorResponse is the failure shape for the diagnostic endpoints. Probe
// failures are data, so these still go out with HTTP 200; the message is a
// fixed phrase, never a raw driver error.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{
		Status:  string(constants.APIStatusError),
		Message: message,
	}
}
