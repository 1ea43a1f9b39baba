package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/metrics"
)

// Metrics labels requests with the ServeMux pattern that matched, so ids in
// paths do not blow up cardinality. It must wrap the mux directly.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := record(w)

			next.ServeHTTP(rec, r)

			path := r.Pattern
			if path == "" {
				path = "unmatched"
			}
			m.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(rec.status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}
