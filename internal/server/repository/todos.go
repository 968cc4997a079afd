package repository

import (
	"context"
	"database/sql"

	serr "github.com/dkovalev/go-sso-todo/internal/shared/errors"
	"github.com/dkovalev/go-sso-todo/internal/shared/models"
)

type TodosRepository struct {
	db *sql.DB
}

func NewTodosRepository(db *sql.DB) *TodosRepository {
	return &TodosRepository{db: db}
}

// List возвращает всю коллекцию todo без фильтрации.
// Порядок стабильный — по времени вставки (serial pos).
func (r *TodosRepository) List(ctx context.Context) ([]models.Todo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, description FROM todos ORDER BY pos`,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	return scanTodos(rows)
}

// ListByUser возвращает todo пользователя userID.
func (r *TodosRepository) ListByUser(ctx context.Context, userID string) ([]models.Todo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, description FROM todos WHERE user_id=$1 ORDER BY pos`,
		userID,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	return scanTodos(rows)
}

// Create добавляет новую todo.
func (r *TodosRepository) Create(ctx context.Context, todo models.Todo) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO todos (id, user_id, title, description)
		 VALUES ($1,$2,$3,$4)`,
		todo.ID, todo.UserID, todo.Title, todo.Description,
	)
	if err != nil {
		return serr.ErrInternal
	}
	return nil
}

// Update полностью заменяет title/description записи с данным id.
// Принадлежность записи не проверяется. Возвращает обновлённую запись
// либо ErrNotFound.
func (r *TodosRepository) Update(ctx context.Context, id, title, description string) (models.Todo, error) {
	var t models.Todo

	err := r.db.QueryRowContext(ctx,
		`UPDATE todos SET title=$2, description=$3
		 WHERE id=$1
		 RETURNING id, user_id, title, description`,
		id, title, description,
	).Scan(&t.ID, &t.UserID, &t.Title, &t.Description)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.Todo{}, serr.ErrNotFound
		}
		return models.Todo{}, serr.ErrInternal
	}

	return t, nil
}

// Delete удаляет запись с данным id. Принадлежность не проверяется.
func (r *TodosRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id=$1`, id)
	if err != nil {
		return serr.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if n == 0 {
		return serr.ErrNotFound
	}
	return nil
}

func scanTodos(rows *sql.Rows) ([]models.Todo, error) {
	out := make([]models.Todo, 0)
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description); err != nil {
			return nil, serr.ErrInternal
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}
	return out, nil
}
