package http

import (
	"context"
	"net/http"
	"time"
)

// Timeout bounds every request context by d. Handlers pass that context to
// the database, so a stalled query returns context.DeadlineExceeded and is
// answered as backend unavailable instead of hanging the connection.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
