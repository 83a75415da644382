package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/45h1f/learn-docker/internal/common"
	"github.com/45h1f/learn-docker/internal/constants"
	"github.com/45h1f/learn-docker/internal/health"
	"github.com/45h1f/learn-docker/internal/logging"
	"github.com/45h1f/learn-docker/internal/models/dtos/responses"
)

// Fixed failure messages. Driver errors go to the log, never to the wire.
const (
	msgDatabaseUnreachable = "Cannot connect to database"
	msgCacheUnreachable    = "Cannot connect to Redis"
)

// DatabaseDiagnostics is what the database round-trip endpoint needs from
// the metric repository.
type DatabaseDiagnostics interface {
	ServerVersion(ctx context.Context) (string, error)
	RequestRowCount(ctx context.Context) (int64, error)
}

// TestDBHandler handles GET /api/test-db: one live round trip through the
// pool, reporting the server version and the audited request count. A failed
// round trip is a diagnostic result, not a server fault, so the endpoint
// still answers 200 with status "error".
func TestDBHandler(diag DatabaseDiagnostics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version, err := diag.ServerVersion(r.Context())
		if err != nil {
			logging.Warn("Database diagnostic failed", "error", err.Error())
			writeJSON(w, http.StatusOK, responses.NewErrorResponse(msgDatabaseUnreachable))
			return
		}

		requests, err := diag.RequestRowCount(r.Context())
		if err != nil {
			logging.Warn("Database diagnostic failed", "error", err.Error())
			writeJSON(w, http.StatusOK, responses.NewErrorResponse(msgDatabaseUnreachable))
			return
		}

		writeJSON(w, http.StatusOK, responses.NewTestDBResponse(version, requests))
	}
}

// TestCacheHandler handles GET /api/test-cache: write a fresh short-lived
// key, read it straight back, and attach the cache server's own metadata.
// Every call generates its own key, so back-to-back calls never observe each
// other's values.
func TestCacheHandler(cache common.Cache, redisDep health.Dependency) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		check := health.ProbeDetail(r.Context(), redisDep)
		if !check.Reachable {
			writeJSON(w, http.StatusOK, responses.NewErrorResponse(msgCacheUnreachable))
			return
		}

		key := constants.TestCacheKeyPrefix + uuid.NewString()
		value := fmt.Sprintf("Hello from Redis at %s", time.Now().UTC().Format(time.RFC3339))
		cache.Set(key, value, constants.TestCacheTTLSeconds*time.Second)

		var retrieved string
		if got, found := cache.Get(key); found {
			if s, ok := got.(string); ok {
				retrieved = s
			}
		}

		var totalKeys int64
		if n, err := strconv.ParseInt(check.Detail[health.DetailKeyCount], 10, 64); err == nil {
			totalKeys = n
		}

		writeJSON(w, http.StatusOK, responses.NewTestCacheResponse(
			key,
			value,
			retrieved,
			check.Detail[health.DetailVersion],
			check.Detail[health.DetailMemoryUsed],
			totalKeys,
		))
	}
}
