package middleware

import (
	"net"
	"net/http"

	"github.com/45h1f/learn-docker/internal/common"
	"github.com/45h1f/learn-docker/internal/constants"
	"github.com/45h1f/learn-docker/internal/db/repositories"
	"github.com/45h1f/learn-docker/internal/logging"
	gormModels "github.com/45h1f/learn-docker/internal/models/gorm"
)

// RequestAudit persists one row per handled request and bumps the request
// counter before the handler runs. Auditing is strictly best-effort: the
// request must succeed even when the database is down, so failures are
// logged and swallowed. Either collaborator may be nil (the standalone app
// has no request log).
func RequestAudit(logRepo *repositories.RequestLogRepository, requests common.CounterStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if logRepo != nil {
				entry := &gormModels.RequestLog{
					IPAddress: clientIP(r),
					UserAgent: userAgent(r),
					Endpoint:  r.URL.Path,
				}
				if err := logRepo.Insert(r.Context(), entry); err != nil {
					logging.Warn("Request audit insert failed", "error", err.Error())
				}
			}

			if requests != nil {
				if _, err := requests.Increment(r.Context(), string(constants.CounterTotalRequests)); err != nil {
					logging.Warn("Request counter increment failed", "error", err.Error())
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func userAgent(r *http.Request) string {
	if ua := r.Header.Get("User-Agent"); ua != "" {
		return ua
	}
	return "Unknown"
}
