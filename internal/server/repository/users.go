// Postgres-реализация репозиториев.
//
// Включается, если в конфиге задан db.dsn. Семантика идентична
// хранилищу в памяти: те же id, та же фильтрация, тот же exact match
// по email+паролю. Seed пользователей выполняют миграции.
package repository

import (
	"context"
	"database/sql"

	serr "github.com/dkovalev/go-sso-todo/internal/shared/errors"
	"github.com/dkovalev/go-sso-todo/internal/shared/models"
)

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// GetByCredentials ищет пользователя с точным совпадением email и пароля.
//
// Пароль хранится и сравнивается открытым текстом — контракт демо.
func (r *UsersRepository) GetByCredentials(ctx context.Context, email, password string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password, email, role, name, surname
		 FROM users WHERE email=$1 AND password=$2`,
		email, password,
	).Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.Role, &u.Name, &u.Surname)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}
