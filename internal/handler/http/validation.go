package http

import (
	"net/http"

	"agency-articles/internal/handler/http/respond"
)

// MaxURILength bounds path plus query string.
const MaxURILength = 2048

// InputValidation rejects requests whose path or query string exceed
// MaxURILength with 414 before any handler parses them.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path)+len(r.URL.RawQuery) > MaxURILength {
				respond.Error(w, http.StatusRequestURITooLong, "URI too long")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
