package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/kingrain94/digital-menu-api/internal/repository"
)

// tenantScope returns a query restricted to one tenant's rows.
func tenantScope(db *gorm.DB, ctx context.Context, tenantID string) (*gorm.DB, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("tenant_id is required")
	}
	return db.WithContext(ctx).Where("tenant_id = ?", tenantID), nil
}

// see https://www.postgresql.org/docs/16/errcodes-appendix.html
const (
	pgInvalidTextRepresentation = "22P02"
	pgUniqueViolation           = "23505"
)

// translateError maps gorm errors onto the repository sentinels. The writer
// and reader connections are opened with TranslateError so unique violations
// surface as gorm.ErrDuplicatedKey. A malformed uuid in an id or tenant_id
// filter cannot match any row and reads as not found.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", repository.ErrDuplicate, err)
	case errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentation:
		return repository.ErrNotFound
	case errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation:
		return fmt.Errorf("%w: %v", repository.ErrDuplicate, err)
	default:
		return err
	}
}

// updatesFrom collects the non-nil fields of a partial update.
func updatesFrom(pairs ...updatePair) map[string]any {
	updates := make(map[string]any, len(pairs))
	for _, p := range pairs {
		if p.set {
			updates[p.column] = p.value
		}
	}
	return updates
}

type updatePair struct {
	column string
	value  any
	set    bool
}

func field[T any](column string, v *T) updatePair {
	if v == nil {
		return updatePair{column: column}
	}
	return updatePair{column: column, value: *v, set: true}
}
