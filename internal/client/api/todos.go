// Методы клиента для CRUD над todo.
package api

import "github.com/dkovalev/go-sso-todo/internal/shared/models"

// Todos возвращает всю коллекцию todo (эндпоинт без auth-gate).
func (c *Client) Todos() ([]models.Todo, error) {
	var resp []models.Todo
	err := c.GetJSON("/todos", &resp, "")
	return resp, err
}

// TodosForUser возвращает todo аутентифицированного пользователя.
//
// userID попадает в путь запроса, но сервер его игнорирует и фильтрует
// по сессии — передаётся только ради соответствия контракту URL.
func (c *Client) TodosForUser(userID, token string) ([]models.Todo, error) {
	var resp []models.Todo
	err := c.GetJSON("/todos/"+userID, &resp, token)
	return resp, err
}

// AddTodo создаёт todo от имени владельца токена.
func (c *Client) AddTodo(title, description, token string) (models.TodoResponse, error) {
	var resp models.TodoResponse
	err := c.PostJSON("/todos",
		models.TodoRequest{Title: title, Description: description}, &resp, token)
	return resp, err
}

// UpdateTodo полностью заменяет title/description записи id.
func (c *Client) UpdateTodo(id, title, description, token string) (models.TodoResponse, error) {
	var resp models.TodoResponse
	err := c.PutJSON("/todos/"+id,
		models.TodoRequest{Title: title, Description: description}, &resp, token)
	return resp, err
}

// DeleteTodo удаляет запись id.
func (c *Client) DeleteTodo(id, token string) (models.MessageResponse, error) {
	var resp models.MessageResponse
	err := c.DeleteJSON("/todos/"+id, &resp, token)
	return resp, err
}
