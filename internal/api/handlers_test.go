package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/45h1f/learn-docker/internal/common"
	"github.com/45h1f/learn-docker/internal/config"
	"github.com/45h1f/learn-docker/internal/health"
	"github.com/45h1f/learn-docker/internal/models/dtos/responses"
	"github.com/45h1f/learn-docker/internal/stats"
)

// Mock health.Dependency
type mockDependency struct {
	name         string
	pingFunc     func(ctx context.Context) error
	metadataFunc func(ctx context.Context) (map[string]string, error)
}

func (m *mockDependency) Name() string { return m.name }

func (m *mockDependency) Ping(ctx context.Context) error {
	if m.pingFunc == nil {
		return nil
	}
	return m.pingFunc(ctx)
}

func (m *mockDependency) Metadata(ctx context.Context) (map[string]string, error) {
	if m.metadataFunc == nil {
		return map[string]string{}, nil
	}
	return m.metadataFunc(ctx)
}

// Mock DatabaseDiagnostics
type mockDiagnostics struct {
	serverVersionFunc   func(ctx context.Context) (string, error)
	requestRowCountFunc func(ctx context.Context) (int64, error)
}

func (m *mockDiagnostics) ServerVersion(ctx context.Context) (string, error) {
	return m.serverVersionFunc(ctx)
}

func (m *mockDiagnostics) RequestRowCount(ctx context.Context) (int64, error) {
	return m.requestRowCountFunc(ctx)
}

func upDependency(name string) *mockDependency {
	return &mockDependency{name: name}
}

func downDependency(name string) *mockDependency {
	return &mockDependency{
		name:     name,
		pingFunc: func(ctx context.Context) error { return errors.New("connection refused") },
	}
}

func TestHealthHandlerAllReachable(t *testing.T) {
	agg := health.NewAggregator(upDependency("database"), upDependency("redis"))
	handler := HealthHandler(agg, nil, nil, "1.0.0", time.Now().Add(-time.Minute))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var resp responses.HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Status != "healthy" {
		t.Errorf("Expected healthy, got %s", resp.Status)
	}
	if resp.Services["database"] != "healthy" || resp.Services["redis"] != "healthy" {
		t.Errorf("Unexpected services: %v", resp.Services)
	}
	if resp.Version != "1.0.0" {
		t.Errorf("Expected version 1.0.0, got %s", resp.Version)
	}
	if resp.Uptime == "" {
		t.Error("Expected uptime to be set")
	}
}

func TestHealthHandlerDatabaseDownStillAnswers200(t *testing.T) {
	agg := health.NewAggregator(downDependency("database"), upDependency("redis"))
	handler := HealthHandler(agg, nil, nil, "1.0.0", time.Now())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200 even when degraded, got %d", rr.Code)
	}

	var resp responses.HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Status != "degraded" {
		t.Errorf("Expected degraded, got %s", resp.Status)
	}
	if resp.Services["database"] != "unhealthy" {
		t.Errorf("Expected database unhealthy, got %v", resp.Services)
	}
	if resp.Services["redis"] != "healthy" {
		t.Errorf("Expected redis healthy, got %v", resp.Services)
	}
}

func TestHealthHandlerWithCollectorReportsMemory(t *testing.T) {
	agg := health.NewAggregator()
	collector := stats.NewCollector(nil, nil)
	handler := HealthHandler(agg, collector, nil, "1.0.0", time.Now())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))

	var resp responses.HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Status != "healthy" {
		t.Errorf("Expected healthy with no dependencies, got %s", resp.Status)
	}
	if resp.MemoryMB <= 0 {
		t.Errorf("Expected positive memory figure, got %v", resp.MemoryMB)
	}
}

func TestTestDBHandlerSuccess(t *testing.T) {
	diag := &mockDiagnostics{
		serverVersionFunc: func(ctx context.Context) (string, error) {
			return "PostgreSQL 15.4 (Debian 15.4-1)", nil
		},
		requestRowCountFunc: func(ctx context.Context) (int64, error) {
			return 42, nil
		},
	}
	handler := TestDBHandler(diag)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/test-db", nil))

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var resp responses.TestDBResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Status != "success" {
		t.Errorf("Expected success, got %s", resp.Status)
	}
	if resp.DatabaseVersion != "PostgreSQL 15.4 (Debian 15.4-1)" {
		t.Errorf("Unexpected version: %s", resp.DatabaseVersion)
	}
	if resp.TotalRequests != 42 {
		t.Errorf("Expected 42 requests, got %d", resp.TotalRequests)
	}
}

func TestTestDBHandlerFailureIsDataNot500(t *testing.T) {
	diag := &mockDiagnostics{
		serverVersionFunc: func(ctx context.Context) (string, error) {
			return "", errors.New("dial tcp: connection refused")
		},
	}
	handler := TestDBHandler(diag)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/test-db", nil))

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var resp responses.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Status != "error" {
		t.Errorf("Expected error, got %s", resp.Status)
	}
	if resp.Message != "Cannot connect to database" {
		t.Errorf("Expected the fixed message, got %q", resp.Message)
	}
}

func cacheMetadata() map[string]string {
	return map[string]string{
		health.DetailVersion:    "7.2.4",
		health.DetailMemoryUsed: "1.05M",
		health.DetailKeyCount:   "12",
	}
}

func TestTestCacheHandlerRoundTrip(t *testing.T) {
	cache := common.NewMemoryCacheService(time.Minute, 0)
	redisDep := &mockDependency{
		name:         "redis",
		metadataFunc: func(ctx context.Context) (map[string]string, error) { return cacheMetadata(), nil },
	}
	handler := TestCacheHandler(cache, redisDep)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/test-cache", nil))

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var resp responses.TestCacheResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Status != "success" {
		t.Errorf("Expected success, got %s", resp.Status)
	}
	if !strings.HasPrefix(resp.TestKey, "test:") {
		t.Errorf("Expected test: key prefix, got %q", resp.TestKey)
	}
	if resp.RetrievedValue != resp.TestValue {
		t.Errorf("Read %q, wrote %q", resp.RetrievedValue, resp.TestValue)
	}
	if resp.RedisVersion != "7.2.4" || resp.MemoryUsage != "1.05M" || resp.TotalKeys != 12 {
		t.Errorf("Metadata not carried: %+v", resp)
	}
}

// Each call generates its own key: two back-to-back calls must not reuse one.
func TestTestCacheHandlerFreshKeyPerCall(t *testing.T) {
	cache := common.NewMemoryCacheService(time.Minute, 0)
	redisDep := &mockDependency{
		name:         "redis",
		metadataFunc: func(ctx context.Context) (map[string]string, error) { return cacheMetadata(), nil },
	}
	handler := TestCacheHandler(cache, redisDep)

	var keys []string
	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/test-cache", nil))

		var resp responses.TestCacheResponse
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		keys = append(keys, resp.TestKey)

		if resp.RetrievedValue != resp.TestValue {
			t.Errorf("Call %d: read %q, wrote %q", i+1, resp.RetrievedValue, resp.TestValue)
		}
	}

	if keys[0] == keys[1] {
		t.Errorf("Expected a fresh key per call, both were %q", keys[0])
	}

	// The first call's key is still cached (within TTL) but never re-read.
	if _, found := cache.Get(keys[0]); !found {
		t.Error("First key should still be cached within its TTL")
	}
}

func TestTestCacheHandlerRedisDown(t *testing.T) {
	cache := common.NewMemoryCacheService(time.Minute, 0)
	handler := TestCacheHandler(cache, downDependency("redis"))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/test-cache", nil))

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var resp responses.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Status != "error" || resp.Message != "Cannot connect to Redis" {
		t.Errorf("Unexpected failure body: %+v", resp)
	}
}

func TestStatsHandlerMergedDocument(t *testing.T) {
	requests := common.NewMemoryCounterStore()
	cacheHits := common.NewMemoryCounterStore()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := requests.Increment(ctx, "total_requests"); err != nil {
			t.Fatalf("Failed to seed counter: %v", err)
		}
	}
	if _, err := cacheHits.Increment(ctx, "cache_hits"); err != nil {
		t.Fatalf("Failed to seed counter: %v", err)
	}

	dbDep := &mockDependency{
		name: "database",
		metadataFunc: func(ctx context.Context) (map[string]string, error) {
			return map[string]string{health.DetailVersion: "PostgreSQL 15.4"}, nil
		},
	}
	agg := health.NewAggregator(dbDep, upDependency("redis"))
	handler := StatsHandler(agg, stats.NewCollector(requests, cacheHits), nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/stats", nil))

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}

	var resp responses.StatsResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Status != "healthy" {
		t.Errorf("Expected healthy, got %s", resp.Status)
	}
	if len(resp.Checks) != 2 || resp.Checks[0].Name != "database" || resp.Checks[1].Name != "redis" {
		t.Errorf("Checks out of order: %+v", resp.Checks)
	}
	if resp.Checks[0].Detail[health.DetailVersion] != "PostgreSQL 15.4" {
		t.Errorf("Metadata dropped: %+v", resp.Checks[0])
	}
	if resp.TotalRequests != 5 || resp.CacheHits != 1 {
		t.Errorf("Counters wrong: requests=%d hits=%d", resp.TotalRequests, resp.CacheHits)
	}
}

// Reading stats repeatedly with no writes in between must never show the
// request counter going backwards.
func TestStatsHandlerRequestCountNonDecreasing(t *testing.T) {
	requests := common.NewMemoryCounterStore()
	if _, err := requests.Increment(context.Background(), "total_requests"); err != nil {
		t.Fatalf("Failed to seed counter: %v", err)
	}

	agg := health.NewAggregator(upDependency("database"), upDependency("redis"))
	handler := StatsHandler(agg, stats.NewCollector(requests, common.NewMemoryCounterStore()), nil)

	var last int64 = -1
	for i := 0; i < 4; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/stats", nil))

		var resp responses.StatsResponse
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.TotalRequests < last {
			t.Errorf("Request count went backwards: %d after %d", resp.TotalRequests, last)
		}
		last = resp.TotalRequests
	}
}

func TestInfoHandlerWithAndWithoutEndpoints(t *testing.T) {
	cfg := config.Config{
		Environment: "development",
		Debug:       true,
		Version:     "1.0.0",
		DB:          config.DBConfig{Host: "database", Name: "webapp"},
		Redis:       config.RedisConfig{Host: "cache"},
	}
	collector := stats.NewCollector(nil, nil)

	rr := httptest.NewRecorder()
	InfoHandler(cfg, collector, true).ServeHTTP(rr, httptest.NewRequest("GET", "/info", nil))

	var withDeps responses.InfoResponse
	if err := json.NewDecoder(rr.Body).Decode(&withDeps); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if withDeps.DBHost != "database" || withDeps.DBName != "webapp" || withDeps.RedisHost != "cache" {
		t.Errorf("Dependency endpoints missing: %+v", withDeps)
	}
	if withDeps.GoVersion == "" || withDeps.CPUCount < 1 {
		t.Errorf("Runtime facts missing: %+v", withDeps)
	}

	rr = httptest.NewRecorder()
	InfoHandler(cfg, collector, false).ServeHTTP(rr, httptest.NewRequest("GET", "/info", nil))

	var withoutDeps responses.InfoResponse
	if err := json.NewDecoder(rr.Body).Decode(&withoutDeps); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if withoutDeps.DBHost != "" || withoutDeps.RedisHost != "" {
		t.Errorf("Expected no dependency endpoints, got %+v", withoutDeps)
	}
}
