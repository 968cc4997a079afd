// Хранилище в памяти — режим демо по умолчанию (db.dsn пуст).
//
// Данные живут ровно столько, сколько живёт процесс. Seed: два
// пользователя и по одному todo на каждого; id генерируются при старте,
// поэтому от запуска к запуску меняются.
//
// Слайсы закрыты мьютексом только ради memory-safety рантайма Go.
// Семантика при конкурентных записях остаётся last-write-wins без
// каких-либо транзакционных границ.
package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	serr "github.com/dkovalev/go-sso-todo/internal/shared/errors"
	"github.com/dkovalev/go-sso-todo/internal/shared/models"
)

// MemoryUsersRepository — статический набор пользователей в памяти.
type MemoryUsersRepository struct {
	mu    sync.Mutex
	users []models.User
}

// MemoryTodosRepository — общая изменяемая коллекция todo в памяти.
type MemoryTodosRepository struct {
	mu    sync.Mutex
	todos []models.Todo
}

// SeedUsers возвращает стартовый набор пользователей.
//
// Пароли в открытом виде — осознанная слабость демо, сравнение при
// логине посимвольное.
func SeedUsers() []models.User {
	return []models.User{
		{
			Username: "admin",
			Password: "admin",
			Email:    "admin@gmail.com",
			Role:     "admin",
			Name:     "Admin",
			Surname:  "Admin",
			ID:       uuid.NewString(),
		},
		{
			Username: "serif",
			Password: "serif",
			Email:    "serif@gmail.com",
			Role:     "user",
			Name:     "Serif",
			Surname:  "Serif",
			ID:       uuid.NewString(),
		},
	}
}

// SeedTodos возвращает стартовые todo для переданных пользователей.
func SeedTodos(users []models.User) []models.Todo {
	todos := make([]models.Todo, 0, len(users))
	titles := []string{"Admin Todo", "Serif Todo"}
	descriptions := []string{
		"Review the access list before the end of the week.",
		"Water the plants and call the office.",
	}
	for i, u := range users {
		if i >= len(titles) {
			break
		}
		todos = append(todos, models.Todo{
			ID:          uuid.NewString(),
			UserID:      u.ID,
			Title:       titles[i],
			Description: descriptions[i],
		})
	}
	return todos
}

// NewMemoryUsersRepository создаёт репозиторий пользователей с переданным seed.
func NewMemoryUsersRepository(users []models.User) *MemoryUsersRepository {
	return &MemoryUsersRepository{users: users}
}

// NewMemoryTodosRepository создаёт репозиторий todo с переданным seed.
func NewMemoryTodosRepository(todos []models.Todo) *MemoryTodosRepository {
	return &MemoryTodosRepository{todos: todos}
}

// GetByCredentials ищет пользователя с точным совпадением email И пароля.
//
// Возвращает ErrNotFound, если такой пары нет. Никакого хэширования:
// контракт хранилища — exact match по обоим полям.
func (r *MemoryUsersRepository) GetByCredentials(ctx context.Context, email, password string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	return models.User{}, serr.ErrNotFound
}

// List возвращает копию ВСЕЙ коллекции todo, без фильтрации.
func (r *MemoryTodosRepository) List(ctx context.Context) ([]models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Todo, len(r.todos))
	copy(out, r.todos)
	return out, nil
}

// ListByUser возвращает todo, принадлежащие пользователю userID.
func (r *MemoryTodosRepository) ListByUser(ctx context.Context, userID string) ([]models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Todo, 0)
	for _, t := range r.todos {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

// Create добавляет todo в конец коллекции.
func (r *MemoryTodosRepository) Create(ctx context.Context, todo models.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.todos = append(r.todos, todo)
	return nil
}

// Update полностью заменяет title/description записи с данным id.
//
// Принадлежность записи НЕ проверяется — обновить можно чужую todo.
// Возвращает обновлённую запись либо ErrNotFound.
func (r *MemoryTodosRepository) Update(ctx context.Context, id, title, description string) (models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.todos {
		if r.todos[i].ID == id {
			r.todos[i].Title = title
			r.todos[i].Description = description
			return r.todos[i], nil
		}
	}
	return models.Todo{}, serr.ErrNotFound
}

// Delete удаляет запись с данным id. Принадлежность не проверяется.
// Возвращает ErrNotFound, если записи нет; коллекция при этом не меняется.
func (r *MemoryTodosRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.todos {
		if r.todos[i].ID == id {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return nil
		}
	}
	return serr.ErrNotFound
}
