package gorm

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/blendata/cerberus/pkg/server/store"
)

func TestComponentByName(t *testing.T) {
	db, mock := newMockDB(t)
	components := NewComponentsStore(db)

	rows := sqlmock.NewRows([]string{"id", "name", "created_at"}).
		AddRow(int64(1), "experiment", time.Now())
	mock.ExpectQuery(`SELECT .* FROM "components"`).
		WithArgs("experiment").
		WillReturnRows(rows)

	component, err := components.ComponentByName("experiment")
	if err != nil {
		t.Fatalf("ComponentByName() error = %v", err)
	}
	if component.ID != 1 || component.Name != "experiment" {
		t.Errorf("unexpected component: %+v", component)
	}
}

func TestComponentByNameNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	components := NewComponentsStore(db)

	mock.ExpectQuery(`SELECT .* FROM "components"`).
		WithArgs("nonexistent").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}))

	_, err := components.ComponentByName("nonexistent")
	if !errors.Is(err, store.ErrComponentNotFound) {
		t.Errorf("error = %v, want ErrComponentNotFound", err)
	}
}

func TestCreateComponent(t *testing.T) {
	db, mock := newMockDB(t)
	components := NewComponentsStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "components"`).
		WithArgs("pipeline", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectCommit()

	component, err := components.CreateComponent("pipeline")
	if err != nil {
		t.Fatalf("CreateComponent() error = %v", err)
	}
	if component.ID != 3 {
		t.Errorf("ID = %d, want 3", component.ID)
	}
}
