package pathutil

import (
	"strings"
)

// OtherPath is the label used for any path outside the known route set.
const OtherPath = "/other"

var knownPaths = map[string]struct{}{
	"/insert_article":          {},
	"/list_articles":           {},
	"/get_article_by_id":       {},
	"/list_system_agencies":    {},
	"/get_system_agency_by_id": {},
	"/health":                  {},
	"/ready":                   {},
	"/live":                    {},
	"/metrics":                 {},
}

// NormalizePath maps a request path to a bounded set of metric labels.
// Query strings and trailing slashes are stripped, everything under
// /swagger/ collapses to "/swagger", and unknown paths become OtherPath so
// scanners cannot blow up label cardinality.
//
// Examples:
//
//	NormalizePath("/list_articles")                 // "/list_articles"
//	NormalizePath("/get_article_by_id?id_article=1") // "/get_article_by_id"
//	NormalizePath("/swagger/index.html")            // "/swagger"
//	NormalizePath("/wp-login.php")                  // "/other"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if path == "/swagger" || strings.HasPrefix(path, "/swagger/") {
		return "/swagger"
	}
	if _, ok := knownPaths[path]; ok {
		return path
	}
	return OtherPath
}
