package middleware

import (
	"net/http"

	"github.com/45h1f/learn-docker/internal/logging"
)

// RecoverMiddleware turns a panicking handler into a generic 500. The panic
// value stays in the log; the wire carries no internal detail.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logging.Error("Handler panicked",
					"request_id", RequestIDFromContext(r.Context()),
					"endpoint", r.URL.Path,
					"panic", rec,
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"status":"error","message":"Internal server error"}` + "\n"))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
