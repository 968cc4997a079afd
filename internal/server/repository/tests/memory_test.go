package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/dkovalev/go-sso-todo/internal/server/repository"
	serr "github.com/dkovalev/go-sso-todo/internal/shared/errors"
	"github.com/dkovalev/go-sso-todo/internal/shared/models"
)

// Стартовые данные: два пользователя, у каждого по одному todo
func TestSeeds(t *testing.T) {
	users := repository.SeedUsers()
	if len(users) != 2 {
		t.Fatalf("expected 2 seed users, got %d", len(users))
	}

	if users[0].Email != "admin@gmail.com" || users[0].Role != "admin" {
		t.Fatalf("unexpected first user: %+v", users[0])
	}
	if users[1].Email != "serif@gmail.com" || users[1].Role != "user" {
		t.Fatalf("unexpected second user: %+v", users[1])
	}
	if users[0].ID == "" || users[1].ID == "" || users[0].ID == users[1].ID {
		t.Fatalf("seed user ids must be unique and non-empty")
	}

	todos := repository.SeedTodos(users)
	if len(todos) != 2 {
		t.Fatalf("expected 2 seed todos, got %d", len(todos))
	}
	if todos[0].UserID != users[0].ID || todos[1].UserID != users[1].ID {
		t.Fatalf("seed todos must belong to seed users: %+v", todos)
	}
	if todos[0].Title != "Admin Todo" || todos[1].Title != "Serif Todo" {
		t.Fatalf("unexpected seed titles: %q, %q", todos[0].Title, todos[1].Title)
	}
}

// Точное совпадение email и пароля
func TestMemoryUsers_GetByCredentials(t *testing.T) {
	repo := repository.NewMemoryUsersRepository(repository.SeedUsers())
	ctx := context.Background()

	user, err := repo.GetByCredentials(ctx, "admin@gmail.com", "admin")
	if err != nil {
		t.Fatalf("get by credentials: %v", err)
	}
	if user.Username != "admin" {
		t.Fatalf("unexpected user: %+v", user)
	}

	// не тот пароль
	if _, err := repo.GetByCredentials(ctx, "admin@gmail.com", "serif"); !errors.Is(err, serr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}

	// сравнение регистрозависимое
	if _, err := repo.GetByCredentials(ctx, "Admin@gmail.com", "admin"); !errors.Is(err, serr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for different case, got: %v", err)
	}
}

// Выборка по владельцу
func TestMemoryTodos_ListByUser(t *testing.T) {
	users := repository.SeedUsers()
	repo := repository.NewMemoryTodosRepository(repository.SeedTodos(users))
	ctx := context.Background()

	todos, err := repo.ListByUser(ctx, users[0].ID)
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(todos) != 1 || todos[0].Title != "Admin Todo" {
		t.Fatalf("unexpected todos: %+v", todos)
	}

	// неизвестный владелец — пустой список, не ошибка
	empty, err := repo.ListByUser(ctx, "nobody")
	if err != nil {
		t.Fatalf("list by unknown user: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty list, got: %+v", empty)
	}
}

// Создание и чтение
func TestMemoryTodos_Create(t *testing.T) {
	repo := repository.NewMemoryTodosRepository(nil)
	ctx := context.Background()

	todo := models.Todo{ID: "t-1", UserID: "u-1", Title: "x", Description: "y"}
	if err := repo.Create(ctx, todo); err != nil {
		t.Fatalf("create: %v", err)
	}

	todos, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(todos) != 1 || todos[0] != todo {
		t.Fatalf("unexpected todos: %+v", todos)
	}
}

// Update заменяет title и description целиком
func TestMemoryTodos_Update(t *testing.T) {
	repo := repository.NewMemoryTodosRepository([]models.Todo{
		{ID: "t-1", UserID: "u-1", Title: "old", Description: "old"},
	})
	ctx := context.Background()

	updated, err := repo.Update(ctx, "t-1", "new", "")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "new" || updated.Description != "" {
		t.Fatalf("unexpected updated todo: %+v", updated)
	}
	if updated.UserID != "u-1" {
		t.Fatalf("owner must not change: %+v", updated)
	}

	if _, err := repo.Update(ctx, "missing", "t", "d"); !errors.Is(err, serr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

// Неудачное удаление не меняет коллекцию
func TestMemoryTodos_Delete(t *testing.T) {
	repo := repository.NewMemoryTodosRepository([]models.Todo{
		{ID: "t-1", UserID: "u-1", Title: "a"},
		{ID: "t-2", UserID: "u-2", Title: "b"},
	})
	ctx := context.Background()

	if err := repo.Delete(ctx, "missing"); !errors.Is(err, serr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}

	todos, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("failed delete must not change the collection, got %d todos", len(todos))
	}

	if err := repo.Delete(ctx, "t-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	todos, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(todos) != 1 || todos[0].ID != "t-2" {
		t.Fatalf("unexpected todos after delete: %+v", todos)
	}
}
