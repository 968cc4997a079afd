// HTTP-хендлеры CRUD над общей коллекцией todo
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkovalev/go-sso-todo/internal/server/middleware"
	serr "github.com/dkovalev/go-sso-todo/internal/shared/errors"
	"github.com/dkovalev/go-sso-todo/internal/shared/models"
)

// ListTodos возвращает ВСЮ коллекцию todo, без фильтрации и БЕЗ
// проверки аутентификации.
//
// Отсутствие auth-gate — зафиксированный контракт эндпоинта; похоже на
// баг, но вопрос "публичная доска или дыра" отдан владельцу продукта и
// здесь не решается.
//
// @Summary      List all todos
// @Tags         todos
// @Produce      json
// @Success      200 {array} models.Todo
// @Router       /todos [get]
func (h *Handler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.Svc.Todos.List(r.Context())
	if err != nil {
		h.Log.Logger.Sugar().Error("list todos failed")
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteJSON(w, http.StatusOK, todos)
}

// ListUserTodos возвращает todo аутентифицированного пользователя.
//
// Сегмент пути {userId} принимается, но НЕ используется: фильтрация
// всегда идёт по id пользователя из сессионной cookie. Ещё одна
// зафиксированная странность контракта.
//
// Ответы:
//   - 200 OK: массив todo;
//   - 401 Unauthorized: нет валидной сессии ({"error":"Unauthorized"}).
//
// @Summary      List todos of the authenticated user
// @Tags         todos
// @Produce      json
// @Param        userId path string true "Accepted but ignored; session identity wins"
// @Success      200 {array} models.Todo
// @Failure      401 {object} ErrorResponse
// @Router       /todos/{userId} [get]
func (h *Handler) ListUserTodos(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	// принимается, но игнорируется — фильтруем по сессии
	_ = chi.URLParam(r, "userId")

	todos, err := h.Svc.Todos.ListForUser(r.Context(), user.ID)
	if err != nil {
		h.Log.Logger.Sugar().Error("list user todos failed")
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteJSON(w, http.StatusOK, todos)
}

// CreateTodo создаёт todo, владельцем которой становится
// аутентифицированный пользователь.
//
// Ответы:
//   - 201 Created: {"message":"Todo added successfully","data":{...}};
//   - 401 Unauthorized: нет валидной сессии.
//
// @Summary      Add todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        request body models.TodoRequest true "New todo"
// @Success      201 {object} models.TodoResponse
// @Failure      401 {object} ErrorResponse
// @Router       /todos [post]
func (h *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	var req models.TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	todo, err := h.Svc.Todos.Create(r.Context(), user.ID, req.Title, req.Description)
	if err != nil {
		h.Log.Logger.Sugar().Error("create todo failed")
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteJSON(w, http.StatusCreated, models.TodoResponse{
		Message: "Todo added successfully",
		Data:    todo,
	})
}

// UpdateTodo полностью заменяет title/description записи {id}.
//
// Принадлежность записи не проверяется: обновить можно чужую todo.
//
// Ответы:
//   - 200 OK: {"message":"Todo updated successfully","data":{...}};
//   - 401 Unauthorized: {"message":"Unauthorized"} (именно "message");
//   - 404 Not Found: {"message":"Todo not found"}.
//
// @Summary      Update todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id path string true "Todo id"
// @Param        request body models.TodoRequest true "New title/description"
// @Success      200 {object} models.TodoResponse
// @Failure      401 {object} models.MessageResponse
// @Failure      404 {object} models.MessageResponse
// @Router       /todos/{id} [put]
func (h *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFromContext(r.Context()); !ok {
		WriteMessage(w, http.StatusUnauthorized, serr.ErrUnauthorized.Error())
		return
	}

	var req models.TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	id := chi.URLParam(r, "id")

	todo, err := h.Svc.Todos.Update(r.Context(), id, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			WriteMessage(w, http.StatusNotFound, "Todo not found")
			return
		}
		h.Log.Logger.Sugar().Error("update todo failed")
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteJSON(w, http.StatusOK, models.TodoResponse{
		Message: "Todo updated successfully",
		Data:    todo,
	})
}

// DeleteTodo удаляет запись {id}. Принадлежность не проверяется.
//
// Ответы:
//   - 200 OK: {"message":"Todo deleted successfully"};
//   - 401 Unauthorized: {"message":"Unauthorized"};
//   - 404 Not Found: {"message":"Todo not found"} — коллекция не меняется.
//
// @Summary      Delete todo
// @Tags         todos
// @Produce      json
// @Param        id path string true "Todo id"
// @Success      200 {object} models.MessageResponse
// @Failure      401 {object} models.MessageResponse
// @Failure      404 {object} models.MessageResponse
// @Router       /todos/{id} [delete]
func (h *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFromContext(r.Context()); !ok {
		WriteMessage(w, http.StatusUnauthorized, serr.ErrUnauthorized.Error())
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.Svc.Todos.Delete(r.Context(), id); err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			WriteMessage(w, http.StatusNotFound, "Todo not found")
			return
		}
		h.Log.Logger.Sugar().Error("delete todo failed")
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteMessage(w, http.StatusOK, "Todo deleted successfully")
}
