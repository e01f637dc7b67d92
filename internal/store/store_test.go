package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newTestStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return New(db), mock
}

// docCapture matches any []byte/string argument and remembers it so tests
// can decode what was written.
type docCapture struct {
	value []byte
}

func (c *docCapture) Match(v driver.Value) bool {
	switch doc := v.(type) {
	case []byte:
		c.value = doc
	case string:
		c.value = []byte(doc)
	default:
		return false
	}
	return true
}

func expectLoad(mock sqlmock.Sqlmock, key, doc string) {
	mock.ExpectQuery("SELECT doc").
		WithArgs(key).
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow([]byte(doc)))
}

func expectLoadMissing(mock sqlmock.Sqlmock, key string) {
	mock.ExpectQuery("SELECT doc").
		WithArgs(key).
		WillReturnError(sql.ErrNoRows)
}

func expectSave(mock sqlmock.Sqlmock, key string, capture *docCapture) {
	mock.ExpectExec("INSERT INTO collections").
		WithArgs(key, capture).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

func TestLoadCollectionDefaults(t *testing.T) {
	tests := []struct {
		name  string
		setup func(mock sqlmock.Sqlmock)
	}{
		{
			name: "missing document",
			setup: func(mock sqlmock.Sqlmock) {
				expectLoadMissing(mock, usersKey)
			},
		},
		{
			name: "corrupt document",
			setup: func(mock sqlmock.Sqlmock) {
				expectLoad(mock, usersKey, `{"not":"a list"`)
			},
		},
		{
			name: "query failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT doc").
					WithArgs(usersKey).
					WillReturnError(errors.New("connection reset"))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := newTestStore(t)
			tc.setup(mock)

			users := s.Users(context.Background())
			if len(users) != 0 {
				t.Fatalf("expected empty default, got %d users", len(users))
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestSaveCollectionError(t *testing.T) {
	s, mock := newTestStore(t)

	expectLoad(mock, transactionsKey, `[]`)
	mock.ExpectExec("INSERT INTO collections").
		WillReturnError(errors.New("disk full"))

	err := s.SaveTransaction(context.Background(), Transaction{ID: "t1", UserID: "u1", Amount: 3})
	if err == nil {
		t.Fatal("expected error from failed save")
	}
}
