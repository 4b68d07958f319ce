package metrics

import (
	"time"
)

// RecordArticleInserted counts one successful article insert.
func RecordArticleInserted() {
	ArticlesInsertedTotal.Inc()
}

// RecordErrorKind counts an error envelope written to a client.
// Kind is the error classification, e.g. "validation" or "not_found".
func RecordErrorKind(kind string) {
	HTTPErrorsTotal.WithLabelValues(kind).Inc()
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query type (e.g., "list_articles", "insert_article").
// A nil err is recorded as outcome "success", anything else as "error".
func RecordDBQuery(operation string, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	DBQueryDuration.WithLabelValues(operation, outcome).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}

// SetDBCircuitOpen mirrors the circuit breaker state into a gauge.
func SetDBCircuitOpen(open bool) {
	if open {
		DBCircuitOpen.Set(1)
		return
	}
	DBCircuitOpen.Set(0)
}
