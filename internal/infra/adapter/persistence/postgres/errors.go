package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sony/gobreaker"

	"agency-articles/internal/domain/entity"
)

// SQLSTATE codes the adapter distinguishes.
const (
	UniqueViolationCode     = "23505"
	ForeignKeyViolationCode = "23503"
	NotNullViolationCode    = "23502"
	CheckViolationCode      = "23514"
	InvalidDatetimeCode     = "22007"
	DatetimeOverflowCode    = "22008"
)

// AsPgError extracts the server error from err, if there is one.
func AsPgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// classify wraps err with op and, when it recognises the failure, with the
// matching domain error so the HTTP layer can pick a status.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	if pe, ok := AsPgError(err); ok {
		switch {
		case strings.HasPrefix(pe.Code, "23"):
			return fmt.Errorf("%s: %w", op, &entity.ConstraintError{
				Constraint: pe.ConstraintName,
				Detail:     constraintDetail(pe),
				Err:        err,
			})
		case strings.HasPrefix(pe.Code, "22"):
			return fmt.Errorf("%s: %w: %w", op, &entity.ValidationError{
				Field:   dataExceptionField(pe),
				Message: "is invalid: " + pe.Message,
			}, err)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if isUnavailable(err) {
		return fmt.Errorf("%s: %w: %w", op, entity.ErrBackendUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUnavailable(err error) bool {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func constraintDetail(pe *pgconn.PgError) string {
	switch pe.Code {
	case ForeignKeyViolationCode:
		if pe.ConstraintName != "" && strings.Contains(pe.ConstraintName, "system_agency") {
			return "system_agency_id does not reference an existing system agency"
		}
		return "referenced row does not exist"
	case UniqueViolationCode:
		return "duplicate key"
	case NotNullViolationCode:
		if pe.ColumnName != "" {
			return pe.ColumnName + " must not be null"
		}
		return "required column is null"
	case CheckViolationCode:
		return "check constraint failed"
	}
	return pe.Message
}

func dataExceptionField(pe *pgconn.PgError) string {
	switch pe.Code {
	case InvalidDatetimeCode, DatetimeOverflowCode:
		return "publication_date"
	}
	if pe.ColumnName != "" {
		return pe.ColumnName
	}
	return "input"
}
