// Package observability groups the logging, metrics, tracing and SLO
// packages used by the API server.
//
// Subpackages:
//   - logging: slog construction and request-scoped loggers
//   - metrics: Prometheus collectors for HTTP traffic and the database pool
//   - tracing: OpenTelemetry tracer provider setup
//   - slo: rolling availability and latency window
//
// Example usage:
//
//	import (
//	    "agency-articles/internal/observability/logging"
//	    "agency-articles/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger("info")
//	    logger.Info("application started")
//
//	    metrics.RecordArticleInserted()
//	}
package observability
