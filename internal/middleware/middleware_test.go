package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/45h1f/learn-docker/internal/metrics"
)

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if seen == "" {
		t.Fatal("Expected a request ID in the context")
	}
	if got := rr.Header().Get("X-Request-ID"); got != seen {
		t.Errorf("Header %q does not match context ID %q", got, seen)
	}
}

func TestRequestIDKeepsCallerSupplied(t *testing.T) {
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "caller-chose-this")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != "caller-chose-this" {
		t.Errorf("Expected the caller's ID back, got %q", got)
	}
}

func TestRateLimitThrottlesAfterBurst(t *testing.T) {
	next, _ := okHandler()
	handler := RateLimitMiddleware(next)

	var last int
	for i := 0; i < 15; i++ {
		req := httptest.NewRequest("GET", "/api/stats", nil)
		req.RemoteAddr = "203.0.113.9:40000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		last = rr.Code
	}

	if last != http.StatusTooManyRequests {
		t.Errorf("Expected 429 after exhausting the burst, got %d", last)
	}
}

func TestRateLimitExemptsLoopback(t *testing.T) {
	next, calls := okHandler()
	handler := RateLimitMiddleware(next)

	for i := 0; i < 30; i++ {
		req := httptest.NewRequest("GET", "/api/stats", nil)
		req.RemoteAddr = "127.0.0.1:40000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("Loopback request %d throttled with %d", i+1, rr.Code)
		}
	}
	if *calls != 30 {
		t.Errorf("Expected 30 handled requests, got %d", *calls)
	}
}

func TestRecoverTurnsPanicInto500(t *testing.T) {
	handler := RecoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", rr.Code)
	}
	if body := rr.Body.String(); strings.Contains(body, "boom") {
		t.Errorf("Panic detail leaked to the wire: %s", body)
	}
	if !strings.Contains(rr.Body.String(), `"status":"error"`) {
		t.Errorf("Expected the generic error body, got %s", rr.Body.String())
	}
}

func TestMetricsMiddlewareCountsByRoutePattern(t *testing.T) {
	reg := metrics.NewRegistry("mwtest")

	router := chi.NewRouter()
	router.Use(MetricsMiddleware(reg))
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rr.Code)
		}
	}

	got := testutil.ToFloat64(reg.HTTPRequestsTotal.WithLabelValues("/health", "GET", "200"))
	if got != 3 {
		t.Errorf("Expected 3 counted requests for /health, got %v", got)
	}
	if inFlight := testutil.ToFloat64(reg.HTTPRequestsInFlight); inFlight != 0 {
		t.Errorf("Expected in-flight gauge back at 0, got %v", inFlight)
	}
}
