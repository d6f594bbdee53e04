package repository

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestUserCreate_ReturnsID(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
		WithArgs("alice", "hash123").
		WillReturnResult(sqlmock.NewResult(5, 1))

	id, err := repo.Create("alice", "hash123")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 5 {
		t.Fatalf("expected id 5, got %d", id)
	}
}

func TestUserGetByUsername_NotFound(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(selectUserByUsernameSQL)).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}))

	u, err := repo.GetByUsername("ghost")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil for missing user, got %+v", u)
	}
}

func TestUserGetByUsername_DBError(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewUserRepository(db)

	dbErr := errors.New("corrupt")
	mock.ExpectQuery(regexp.QuoteMeta(selectUserByUsernameSQL)).
		WillReturnError(dbErr)

	if _, err := repo.GetByUsername("alice"); !errors.Is(err, dbErr) {
		t.Fatalf("expected db error, got %v", err)
	}
}
