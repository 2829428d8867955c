package storage

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMySQLStore_GetFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv_entries").
		WithArgs("restaurant-cart").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[]`))

	store := NewMySQLStore(db)
	got, err := store.Get(context.Background(), "restaurant-cart")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `[]` {
		t.Errorf("expected stored value, got %q", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMySQLStore_GetMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv_entries").
		WithArgs("auth-token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	store := NewMySQLStore(db)
	got, err := store.Get(context.Background(), "auth-token")
	if err != nil {
		t.Fatalf("expected absent row to map to empty value, got error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty value, got %q", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMySQLStore_SetUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs("user-data", `{"id":"user-1"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewMySQLStore(db)
	if err := store.Set(context.Background(), "user-data", `{"id":"user-1"}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMySQLStore_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM kv_entries").
		WithArgs("adminToken").
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewMySQLStore(db)
	if err := store.Delete(context.Background(), "adminToken"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
