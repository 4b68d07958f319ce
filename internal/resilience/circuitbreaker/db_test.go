package circuitbreaker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDBCircuitBreaker(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	dcb := NewDBCircuitBreaker(db)
	assert.Equal(t, gobreaker.StateClosed, dcb.State())
}

func TestDBCircuitBreaker_QueryContext_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT (.+) FROM system_agency").
		WillReturnRows(sqlmock.NewRows([]string{"id_system_agency", "name"}).AddRow(1, "Ministry"))

	dcb := NewDBCircuitBreaker(db)
	rows, err := dcb.QueryContext(context.Background(), "SELECT id_system_agency, name FROM system_agency")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	require.True(t, rows.Next())
	var id int64
	var name string
	require.NoError(t, rows.Scan(&id, &name))
	assert.Equal(t, int64(1), id)
	assert.Equal(t, "Ministry", name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBCircuitBreaker_ExecContext_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectExec("INSERT INTO system_agency").
		WithArgs(int64(1), "Ministry").
		WillReturnResult(sqlmock.NewResult(0, 1))

	dcb := NewDBCircuitBreaker(db)
	res, err := dcb.ExecContext(context.Background(),
		"INSERT INTO system_agency (id_system_agency, name) VALUES ($1, $2)", int64(1), "Ministry")
	require.NoError(t, err)
	n, _ := res.RowsAffected()
	assert.Equal(t, int64(1), n)
}

func TestDBCircuitBreaker_OpensOnConnectionFailures(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	cfg := DBConfig()
	cfg.MinRequests = 3
	dcb := NewDBCircuitBreakerWithConfig(db, cfg)

	for i := 0; i < 3; i++ {
		mock.ExpectQuery("SELECT").WillReturnError(errors.New("dial tcp 127.0.0.1:5432: connection refused"))
		_, err := dcb.QueryContext(context.Background(), "SELECT 1")
		require.Error(t, err)
	}

	assert.Equal(t, gobreaker.StateOpen, dcb.State())
	_, err = dcb.QueryContext(context.Background(), "SELECT 1")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestDBCircuitBreaker_SQLErrorsDoNotTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	cfg := DBConfig()
	cfg.MinRequests = 2
	dcb := NewDBCircuitBreakerWithConfig(db, cfg)

	fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
	for i := 0; i < 4; i++ {
		mock.ExpectQuery("INSERT").WillReturnError(fk)
		_, err := dcb.QueryContext(context.Background(), "INSERT INTO article DEFAULT VALUES RETURNING id_article")
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateClosed, dcb.State())
}

func TestIsDBFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"no rows", sql.ErrNoRows, false},
		{"pg error", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), false},
		{"deadline", context.DeadlineExceeded, true},
		{"connection", errors.New("connection refused"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDBFailure(tt.err))
		})
	}
}

func TestDBConfig(t *testing.T) {
	cfg := DBConfig()
	assert.Equal(t, "database", cfg.Name)
	assert.Equal(t, uint32(5), cfg.MinRequests)
	assert.Equal(t, 1.0, cfg.FailureThreshold)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	require.NotNil(t, cfg.IsFailure)
	assert.False(t, cfg.IsFailure(sql.ErrNoRows))
}
