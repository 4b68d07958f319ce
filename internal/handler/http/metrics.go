package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"agency-articles/internal/handler/http/pathutil"
	"agency-articles/internal/handler/http/respond"
	"agency-articles/internal/observability/metrics"
	"agency-articles/internal/observability/slo"
)

// httpRequestsInFlight tracks the current number of HTTP requests being processed.
var httpRequestsInFlight = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "http_requests_in_flight",
		Help: "Current number of HTTP requests being served",
	},
)

// MetricsMiddleware records request count, duration and sizes. Paths are
// normalised first so the label set stays bounded.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		path := pathutil.NormalizePath(r.URL.Path)
		rw := wrap(w)

		start := time.Now()
		next.ServeHTTP(rw, r)

		reqSize := 0
		if r.ContentLength > 0 {
			reqSize = int(r.ContentLength)
		}
		metrics.RecordHTTPRequest(r.Method, path, strconv.Itoa(rw.status), time.Since(start), reqSize, rw.bytes)
	})
}

// SLOMiddleware feeds finished API requests into t. Probe and metrics
// scrapes are left out so they cannot mask API failures. Failures written
// by respond.Responder are counted by their error kind's status, so legacy
// 500s for client mistakes do not count as server errors.
func SLOMiddleware(t *slo.Tracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch pathutil.NormalizePath(r.URL.Path) {
			case "/health", "/ready", "/live", "/metrics":
				next.ServeHTTP(w, r)
				return
			}
			ctx, kindStatus := respond.WithKindStatus(r.Context())
			rw := wrap(w)
			start := time.Now()
			next.ServeHTTP(rw, r.WithContext(ctx))

			status := rw.status
			if *kindStatus != 0 {
				status = *kindStatus
			}
			t.Observe(status, time.Since(start))
		})
	}
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
