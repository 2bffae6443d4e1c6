package gorm

import (
	"errors"
	"testing"

	"github.com/jackc/pgconn"

	"github.com/blendata/cerberus/pkg/server/store"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{
			"element name collision",
			&pgconn.PgError{Code: "23505", ConstraintName: elementNameUniqueConstraint},
			store.ErrDuplicateElement,
		},
		{
			"other unique violation",
			&pgconn.PgError{Code: "23505", ConstraintName: "users_name_key"},
			store.ErrConstraintViolation,
		},
		{
			"foreign key violation",
			&pgconn.PgError{Code: "23503", ConstraintName: "user_permissions_user_id_fkey"},
			store.ErrConstraintViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.in)
			if !errors.Is(got, tt.want) {
				t.Errorf("translateError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTranslateErrorPassthrough(t *testing.T) {
	transient := errors.New("connection refused")
	if got := translateError(transient); got != transient {
		t.Errorf("transient error lost its identity: %v", got)
	}

	// Serialization failures and other non-constraint Postgres errors keep
	// their identity too.
	serialization := &pgconn.PgError{Code: "40001"}
	if got := translateError(serialization); got != error(serialization) {
		t.Errorf("non-constraint pg error was translated: %v", got)
	}
}
