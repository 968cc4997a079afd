// Package service содержит бизнес-логику приложения.
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/dkovalev/go-sso-todo/internal/server/config"
	"github.com/dkovalev/go-sso-todo/internal/shared/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users UsersRepo
	Todos TodosRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth  *AuthService
	Todos *TodoService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (ключ подписи и TTL токена).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:  NewAuthService(repos.Users, cfg),
		Todos: NewTodoService(repos.Todos),
	}
}

// UsersRepo — репозиторий пользователей (нужен для login).
type UsersRepo interface {
	GetByCredentials(ctx context.Context, email, password string) (models.User, error)
}

// TodosRepo — репозиторий todo (CRUD + выборки).
type TodosRepo interface {
	List(ctx context.Context) ([]models.Todo, error)
	ListByUser(ctx context.Context, userID string) ([]models.Todo, error)
	Create(ctx context.Context, todo models.Todo) error
	Update(ctx context.Context, id, title, description string) (models.Todo, error)
	Delete(ctx context.Context, id string) error
}
