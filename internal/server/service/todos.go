package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dkovalev/go-sso-todo/internal/shared/models"
)

// TodoService реализует операции над общей коллекцией todo.
//
// Границы доступа здесь — зафиксированный контракт API,
// включая спорные места:
//   - List отдаёт коллекцию целиком и вызывается БЕЗ аутентификации;
//   - Update/Delete не проверяют принадлежность записи;
//   - владелец фиксируется только при создании и в ListForUser.
//
// Все три пункта помечены как открытые вопросы к владельцу продукта
// (баг или фича) — менять их молча нельзя.
type TodoService struct {
	todos TodosRepo
}

// NewTodoService создаёт TodoService.
func NewTodoService(todos TodosRepo) *TodoService {
	return &TodoService{todos: todos}
}

// List возвращает все todo всех пользователей, без фильтрации.
func (s *TodoService) List(ctx context.Context) ([]models.Todo, error) {
	return s.todos.List(ctx)
}

// ListForUser возвращает todo аутентифицированного пользователя.
//
// userID всегда берётся из сессии; значение из пути запроса
// игнорируется.
func (s *TodoService) ListForUser(ctx context.Context, userID string) ([]models.Todo, error) {
	return s.todos.ListByUser(ctx, userID)
}

// Create создаёт todo с владельцем userID и новым uuid.
func (s *TodoService) Create(ctx context.Context, userID, title, description string) (models.Todo, error) {
	todo := models.Todo{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
	}
	if err := s.todos.Create(ctx, todo); err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

// Update полностью заменяет title/description записи id,
// независимо от владельца. ErrNotFound, если записи нет.
func (s *TodoService) Update(ctx context.Context, id, title, description string) (models.Todo, error) {
	return s.todos.Update(ctx, id, title, description)
}

// Delete удаляет запись id независимо от владельца.
// ErrNotFound, если записи нет; коллекция при этом не меняется.
func (s *TodoService) Delete(ctx context.Context, id string) error {
	return s.todos.Delete(ctx, id)
}
