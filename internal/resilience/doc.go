// Package resilience holds the fault tolerance helpers wrapped around the
// database: a circuit breaker for queries and retry with backoff for the
// startup ping.
//
// Usage Example:
//
//	dcb := circuitbreaker.NewDBCircuitBreaker(pool)
//	rows, err := dcb.QueryContext(ctx, "SELECT id_system_agency, name FROM system_agency")
//
//	err := retry.WithBackoff(ctx, retry.DBConfig(), func() error {
//	    return pool.PingContext(ctx)
//	})
package resilience
