package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"agency-articles/internal/handler/http/respond"
	"agency-articles/internal/observability/metrics"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string                 `json:"status"` // "healthy", "degraded" or "unhealthy"
	Message string                 `json:"message,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// BreakerState is implemented by the database circuit breaker.
type BreakerState interface {
	State() gobreaker.State
}

// HealthHandler reports database connectivity, pool statistics and the
// circuit breaker state.
type HealthHandler struct {
	DB      *sql.DB
	Breaker BreakerState
	Limiter *RateLimiter
	Version string
}

// ServeHTTP godoc
// @Summary      Health check
// @Description  Database connectivity, pool statistics and circuit breaker state
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Failure      503  {object}  HealthResponse
// @Router       /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	allHealthy := true

	if h.DB != nil {
		dbCheck := h.checkDatabase(ctx)
		checks["database"] = dbCheck
		if dbCheck.Status == "unhealthy" {
			allHealthy = false
		}
	} else {
		checks["database"] = CheckStatus{Status: "unhealthy", Message: "not configured"}
		allHealthy = false
	}

	if h.Breaker != nil {
		state := h.Breaker.State()
		check := CheckStatus{Status: "healthy", Details: map[string]interface{}{"state": state.String()}}
		if state == gobreaker.StateOpen {
			check.Status = "unhealthy"
			check.Message = "database circuit breaker is open"
			allHealthy = false
		}
		checks["circuit_breaker"] = check
	}

	if h.Limiter != nil {
		checks["rate_limiter"] = CheckStatus{
			Status:  "healthy",
			Details: map[string]interface{}{"active_clients": h.Limiter.Len()},
		}
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, statusCode, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

// checkDatabase pings the pool directly, bypassing the breaker, and reports
// pool statistics. Utilisation at or above 80% is reported as degraded.
func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if err := h.DB.PingContext(ctx); err != nil {
		return CheckStatus{
			Status:  "unhealthy",
			Message: respond.SanitizeError(err),
		}
	}

	stats := h.DB.Stats()
	metrics.UpdateDBConnectionStats(stats.InUse, stats.Idle)
	details := map[string]interface{}{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
	}

	if stats.MaxOpenConnections == 0 {
		return CheckStatus{
			Status:  "degraded",
			Message: "connection pool max connections not configured",
			Details: details,
		}
	}

	utilizationPercent := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
	details["utilization_percent"] = utilizationPercent
	if utilizationPercent >= 80.0 {
		return CheckStatus{
			Status:  "degraded",
			Message: "connection pool utilization above 80%",
			Details: details,
		}
	}

	return CheckStatus{Status: "healthy", Details: details}
}

// Pinger is implemented by the database circuit breaker.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// ReadyHandler answers readiness probes: 200 once the database answers a
// ping and the breaker is not open. When Breaker also implements Pinger
// the ping goes through it, so failed probes count against the breaker.
type ReadyHandler struct {
	DB      *sql.DB
	Breaker BreakerState
}

// ServeHTTP godoc
// @Summary  Readiness probe
// @Tags     health
// @Produce  plain
// @Success  200  {string}  string  "ready"
// @Failure  503  {string}  string
// @Router   /ready [get]
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB == nil {
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return
	}
	if h.Breaker != nil && h.Breaker.State() == gobreaker.StateOpen {
		http.Error(w, "database circuit breaker open", http.StatusServiceUnavailable)
		return
	}
	var ping Pinger = h.DB
	if p, ok := h.Breaker.(Pinger); ok {
		ping = p
	}
	if err := ping.PingContext(ctx); err != nil {
		http.Error(w, "database not ready", http.StatusServiceUnavailable)
		return
	}

	writePlain(w, "ready")
}

// LiveHandler answers liveness probes.
type LiveHandler struct{}

// ServeHTTP godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  plain
// @Success  200  {string}  string  "alive"
// @Router   /live [get]
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	writePlain(w, "alive")
}

func writePlain(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Default().Warn("failed to write probe response", slog.Any("error", err))
	}
}
