package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"

	"agency-articles/internal/domain/entity"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want entity.Kind
	}{
		{"unique", &pgconn.PgError{Code: UniqueViolationCode}, entity.KindConstraintViolation},
		{"foreign key", &pgconn.PgError{Code: ForeignKeyViolationCode}, entity.KindConstraintViolation},
		{"not null", &pgconn.PgError{Code: NotNullViolationCode, ColumnName: "author"}, entity.KindConstraintViolation},
		{"check", &pgconn.PgError{Code: CheckViolationCode}, entity.KindConstraintViolation},
		{"bad date", &pgconn.PgError{Code: InvalidDatetimeCode}, entity.KindValidation},
		{"date out of range", &pgconn.PgError{Code: DatetimeOverflowCode}, entity.KindValidation},
		{"numeric out of range", &pgconn.PgError{Code: "22003"}, entity.KindValidation},
		{"undefined table", &pgconn.PgError{Code: "42P01"}, entity.KindInternal},
		{"breaker open", gobreaker.ErrOpenState, entity.KindBackendUnavailable},
		{"breaker half-open busy", gobreaker.ErrTooManyRequests, entity.KindBackendUnavailable},
		{"bad conn", driver.ErrBadConn, entity.KindBackendUnavailable},
		{"deadline", context.DeadlineExceeded, entity.KindBackendUnavailable},
		{"canceled", context.Canceled, entity.KindInternal},
		{"plain", errors.New("x"), entity.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify("op", tt.err)
			assert.Equal(t, tt.want, entity.KindOf(err))
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), "op: ")
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	assert.NoError(t, classify("op", nil))
}

func TestClassify_NotNullDetail(t *testing.T) {
	err := classify("Create", &pgconn.PgError{Code: NotNullViolationCode, ColumnName: "author"})
	assert.Contains(t, err.Error(), "author must not be null")
}

func TestClassify_DateField(t *testing.T) {
	err := classify("Create", &pgconn.PgError{Code: InvalidDatetimeCode, Message: "invalid input syntax for type date"})

	var ve *entity.ValidationError
	if assert.ErrorAs(t, err, &ve) {
		assert.Equal(t, "publication_date", ve.Field)
	}
}

func TestAsPgError(t *testing.T) {
	pe, ok := AsPgError(errors.Join(errors.New("wrap"), &pgconn.PgError{Code: "23505"}))
	assert.True(t, ok)
	assert.Equal(t, "23505", pe.Code)

	_, ok = AsPgError(errors.New("no"))
	assert.False(t, ok)
}
