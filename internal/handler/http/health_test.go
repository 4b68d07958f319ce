package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agency-articles/internal/resilience/circuitbreaker"
)

type fixedBreaker gobreaker.State

func (b fixedBreaker) State() gobreaker.State { return gobreaker.State(b) }

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(sqlmock.Sqlmock)
		breaker        BreakerState
		expectedStatus int
		expectHealthy  bool
	}{
		{
			name:           "healthy database",
			setupMock:      func(mock sqlmock.Sqlmock) { mock.ExpectPing() },
			breaker:        fixedBreaker(gobreaker.StateClosed),
			expectedStatus: http.StatusOK,
			expectHealthy:  true,
		},
		{
			name: "database connection error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectPing().WillReturnError(sql.ErrConnDone)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectHealthy:  false,
		},
		{
			name:           "breaker open",
			setupMock:      func(mock sqlmock.Sqlmock) { mock.ExpectPing() },
			breaker:        fixedBreaker(gobreaker.StateOpen),
			expectedStatus: http.StatusServiceUnavailable,
			expectHealthy:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer func() { _ = db.Close() }()
			db.SetMaxOpenConns(10)
			tt.setupMock(mock)

			handler := &HealthHandler{DB: db, Breaker: tt.breaker, Version: "test-version"}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var response HealthResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
			if tt.expectHealthy {
				assert.Equal(t, "healthy", response.Status)
			} else {
				assert.Equal(t, "unhealthy", response.Status)
			}
			assert.Equal(t, "test-version", response.Version)
			assert.NotEmpty(t, response.Timestamp)
			assert.Contains(t, response.Checks, "database")
			if tt.breaker != nil {
				assert.Contains(t, response.Checks, "circuit_breaker")
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHealthHandler_NoDatabaseConfigured(t *testing.T) {
	handler := &HealthHandler{Version: "test-version"}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var response HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "not configured", response.Checks["database"].Message)
}

func TestHealthHandler_UnlimitedPoolIsDegraded(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	mock.ExpectPing()

	check := (&HealthHandler{DB: db}).checkDatabase(httptest.NewRequest(http.MethodGet, "/", nil).Context())

	assert.Equal(t, "degraded", check.Status)
}

func TestHealthHandler_ReportsLimiter(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	db.SetMaxOpenConns(10)
	mock.ExpectPing()

	limiter := NewRateLimiter(1, 1)
	limiter.Allow("10.0.0.1")

	rec := httptest.NewRecorder()
	(&HealthHandler{DB: db, Limiter: limiter}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var response HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	require.Contains(t, response.Checks, "rate_limiter")
	assert.EqualValues(t, 1, response.Checks["rate_limiter"].Details["active_clients"])
}

func TestReadyHandler(t *testing.T) {
	tests := []struct {
		name    string
		ping    error
		breaker BreakerState
		want    int
		body    string
	}{
		{name: "ready", want: http.StatusOK, body: "ready"},
		{name: "ping fails", ping: sql.ErrConnDone, want: http.StatusServiceUnavailable},
		{name: "breaker open", breaker: fixedBreaker(gobreaker.StateOpen), want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer func() { _ = db.Close() }()
			if tt.breaker == nil {
				mock.ExpectPing().WillReturnError(tt.ping)
			}

			rec := httptest.NewRecorder()
			(&ReadyHandler{DB: db, Breaker: tt.breaker}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.want, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

type pingingBreaker struct {
	err   error
	calls int
}

func (b *pingingBreaker) State() gobreaker.State { return gobreaker.StateClosed }

func (b *pingingBreaker) PingContext(context.Context) error {
	b.calls++
	return b.err
}

func TestReadyHandler_PingsThroughBreaker(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	breaker := &pingingBreaker{err: gobreaker.ErrOpenState}
	rec := httptest.NewRecorder()
	(&ReadyHandler{DB: db, Breaker: breaker}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, 1, breaker.calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReadyHandler_DBCircuitBreaker(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	mock.ExpectPing()

	rec := httptest.NewRecorder()
	h := &ReadyHandler{DB: db, Breaker: circuitbreaker.NewDBCircuitBreaker(db)}
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReadyHandler_NoDatabase(t *testing.T) {
	rec := httptest.NewRecorder()
	(&ReadyHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLiveHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	(&LiveHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alive", rec.Body.String())
}
