package postgres

import (
	"context"
	"database/sql"
)

// Querier is the subset of *sql.DB the repositories need. The database
// circuit breaker implements it too, so repositories can run behind it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}
