package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	obsmetrics "github.com/mrhealth/nutrition-platform/internal/observability/metrics"
	"github.com/mrhealth/nutrition-platform/pkg/logging"
)

// RequestLogger emits structured logs for every HTTP request and records
// its latency.
func RequestLogger(logger *logging.Logger, m *obsmetrics.RecordMetrics) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := r.Header.Get("X-Request-ID")
			if reqID == "" {
				reqID = uuid.NewString()
			}
			next.ServeHTTP(w, r)
			elapsed := time.Since(start)
			m.ObserveRequestLatency(r.URL.Path, elapsed.Seconds())
			logger.Info("request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", reqID,
				"duration_ms", elapsed.Milliseconds(),
			)
		})
	}
}
