package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/kingrain94/digital-menu-api/internal/repository"
)

func TestTranslateError(t *testing.T) {
	malformedUUID := &pgconn.PgError{
		Code:    pgInvalidTextRepresentation,
		Message: `invalid input syntax for type uuid: "not-a-uuid"`,
	}
	uniqueViolation := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_tenants_subdomain"}
	otherFailure := errors.New("connection reset by peer")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "record not found", err: gorm.ErrRecordNotFound, want: repository.ErrNotFound},
		{name: "translated duplicate", err: gorm.ErrDuplicatedKey, want: repository.ErrDuplicate},
		{name: "malformed uuid", err: malformedUUID, want: repository.ErrNotFound},
		{name: "wrapped malformed uuid", err: fmt.Errorf("query failed: %w", malformedUUID), want: repository.ErrNotFound},
		{name: "raw unique violation", err: uniqueViolation, want: repository.ErrDuplicate},
		{name: "other", err: otherFailure, want: otherFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestTranslateError_OtherPostgresCodesPassThrough(t *testing.T) {
	fkViolation := &pgconn.PgError{Code: "23503"}

	got := translateError(fkViolation)

	assert.Same(t, fkViolation, got)
	assert.False(t, errors.Is(got, repository.ErrNotFound))
}
