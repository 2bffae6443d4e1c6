package gorm

import (
	"errors"
	"fmt"

	"github.com/jackc/pgconn"

	"github.com/blendata/cerberus/pkg/server/store"
)

// Postgres error codes (class 23, integrity constraint violation)
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// elementNameUniqueConstraint is the unique index on
// elements(component_id, elem_name); see the migrations.
const elementNameUniqueConstraint = "elements_component_id_elem_name_key"

// translateError maps database constraint failures onto the store error
// taxonomy. Anything else passes through untouched so transient failures
// keep their identity.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		if pgErr.ConstraintName == elementNameUniqueConstraint {
			return fmt.Errorf("%w: %v", store.ErrDuplicateElement, err)
		}
		return fmt.Errorf("%w (%s): %v", store.ErrConstraintViolation, pgErr.ConstraintName, err)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w (%s): %v", store.ErrConstraintViolation, pgErr.ConstraintName, err)
	}

	return err
}
