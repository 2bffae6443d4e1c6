package gorm

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"

	"github.com/blendata/cerberus/pkg/server/store"
)

func TestCreateUser(t *testing.T) {
	db, mock := newMockDB(t)
	users := NewUsersStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WithArgs("komsan", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	user, err := users.CreateUser("komsan")
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if user.ID != 1 || user.Name != "komsan" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestCreateUserDuplicateName(t *testing.T) {
	db, mock := newMockDB(t)
	users := NewUsersStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WithArgs("komsan", sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_name_key"})
	mock.ExpectRollback()

	_, err := users.CreateUser("komsan")
	if !errors.Is(err, store.ErrConstraintViolation) {
		t.Errorf("error = %v, want ErrConstraintViolation", err)
	}
}
