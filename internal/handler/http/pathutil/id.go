// Package pathutil parses request parameters and normalises request paths
// for metric labels.
package pathutil

import (
	"net/http"
	"strconv"
	"strings"

	"agency-articles/internal/domain/entity"
)

// QueryID reads the named query parameter as a positive int64.
// Anything else (absent, blank, non-numeric, SQL fragments, zero or negative)
// is rejected with a ValidationError naming the parameter, so the value never
// reaches the database.
//
// Example:
//
//	id, err := QueryID(r, "id_article") // GET /get_article_by_id?id_article=12
//	// Returns: 12, nil
func QueryID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, &entity.ValidationError{Field: name, Message: "is required"}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &entity.ValidationError{Field: name, Message: "must be a positive integer"}
	}
	return id, nil
}
