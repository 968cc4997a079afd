package tests

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dkovalev/go-sso-todo/internal/server/repository"
	serr "github.com/dkovalev/go-sso-todo/internal/shared/errors"
)

// Успех
func TestUsersRepository_GetByCredentials_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, username, password, email, role, name, surname`).
		WithArgs("admin@gmail.com", "admin").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "username", "password", "email", "role", "name", "surname"}).
				AddRow("u-1", "admin", "admin", "admin@gmail.com", "admin", "Admin", "Admin"),
		)

	user, err := repo.GetByCredentials(context.Background(), "admin@gmail.com", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u-1" || user.Role != "admin" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// Нет такой пары email+пароль
func TestUsersRepository_GetByCredentials_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, username, password, email, role, name, surname`).
		WithArgs("admin@gmail.com", "wrong").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByCredentials(context.Background(), "admin@gmail.com", "wrong")
	if !errors.Is(err, serr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Ошибка базы
func TestUsersRepository_GetByCredentials_DBError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, username, password, email, role, name, surname`).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.GetByCredentials(context.Background(), "admin@gmail.com", "admin")
	if !errors.Is(err, serr.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
