package gorm

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name      string
		permitted bool
	}{
		{"grant exists", true},
		{"default deny", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			authz := NewAuthzStore(db)

			rows := sqlmock.NewRows([]string{"exists"}).AddRow(tt.permitted)
			mock.ExpectQuery(`SELECT EXISTS`).
				WithArgs(int64(7), int64(42), "edit").
				WillReturnRows(rows)

			permitted, err := authz.HasPermission(7, 42, "edit")
			if err != nil {
				t.Fatalf("HasPermission() error = %v", err)
			}
			if permitted != tt.permitted {
				t.Errorf("HasPermission() = %v, want %v", permitted, tt.permitted)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unfulfilled expectations: %v", err)
			}
		})
	}
}

func TestHasPermissionStoreError(t *testing.T) {
	db, mock := newMockDB(t)
	authz := NewAuthzStore(db)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(int64(7), int64(42), "edit").
		WillReturnError(errors.New("connection reset"))

	permitted, err := authz.HasPermission(7, 42, "edit")
	if err == nil {
		t.Fatal("expected error from store failure")
	}
	if permitted {
		t.Error("store failure must not report a grant")
	}
}

func TestHasPermissionIsIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	authz := NewAuthzStore(db)

	for i := 0; i < 2; i++ {
		rows := sqlmock.NewRows([]string{"exists"}).AddRow(true)
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs(int64(7), int64(42), "view").
			WillReturnRows(rows)
	}

	first, err := authz.HasPermission(7, 42, "view")
	if err != nil {
		t.Fatalf("first check: %v", err)
	}
	second, err := authz.HasPermission(7, 42, "view")
	if err != nil {
		t.Fatalf("second check: %v", err)
	}
	if first != second {
		t.Errorf("identical checks diverged: %v then %v", first, second)
	}
}
