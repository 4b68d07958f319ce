// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size, error kinds)
//   - Business metrics (articles inserted)
//   - Database query and connection pool metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "agency-articles/internal/observability/metrics"
//
//	func insert(ctx context.Context) error {
//	    start := time.Now()
//	    err := doInsert(ctx)
//	    metrics.RecordDBQuery("insert_article", time.Since(start), err)
//	    if err == nil {
//	        metrics.RecordArticleInserted()
//	    }
//	    return err
//	}
package metrics
