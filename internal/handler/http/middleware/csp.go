package middleware

import (
	"net/http"
	"strings"
)

// Content-Security-Policy values. The API only ever returns JSON, so it
// denies everything; the Swagger UI needs its own scripts, styles and images.
const (
	APIPolicy = "default-src 'none'; frame-ancestors 'none'"

	SwaggerUIPolicy = "default-src 'self'; " +
		"script-src 'self' 'unsafe-inline'; " +
		"style-src 'self' 'unsafe-inline'; " +
		"img-src 'self' data:; " +
		"font-src 'self' data:; " +
		"connect-src 'self'; " +
		"frame-ancestors 'none'; " +
		"base-uri 'self'; " +
		"form-action 'self'"
)

// CSPConfig holds configuration for the security header middleware.
type CSPConfig struct {
	// Enabled controls whether CSP headers are applied.
	Enabled bool

	// DefaultPolicy is applied when no PathPolicies prefix matches.
	DefaultPolicy string

	// PathPolicies maps path prefixes to specific policies.
	// The longest matching prefix wins.
	PathPolicies map[string]string
}

// DefaultCSPConfig returns the API policy with the Swagger UI override.
func DefaultCSPConfig(enabled bool) CSPConfig {
	return CSPConfig{
		Enabled:       enabled,
		DefaultPolicy: APIPolicy,
		PathPolicies:  map[string]string{"/swagger/": SwaggerUIPolicy},
	}
}

// SecurityHeaders sets X-Content-Type-Options and X-Frame-Options on every
// response and, when enabled, the Content-Security-Policy for the path.
func SecurityHeaders(config CSPConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			if config.Enabled {
				if policy := config.selectPolicy(r.URL.Path); policy != "" {
					h.Set("Content-Security-Policy", policy)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (c CSPConfig) selectPolicy(path string) string {
	best, policy := -1, c.DefaultPolicy
	for prefix, p := range c.PathPolicies {
		if strings.HasPrefix(path, prefix) && len(prefix) > best {
			best, policy = len(prefix), p
		}
	}
	return policy
}
