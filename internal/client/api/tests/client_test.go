package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dkovalev/go-sso-todo/internal/client/api"
	"github.com/dkovalev/go-sso-todo/internal/shared/models"
)

// Успешный логин: токен из Set-Cookie
func TestClient_Login_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Email != "admin@gmail.com" || req.Password != "admin" {
			t.Fatalf("unexpected credentials: %+v", req)
		}

		http.SetCookie(w, &http.Cookie{Name: "sso_token", Value: "the-token", Path: "/", MaxAge: 3600})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "Login successful"})
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)

	token, err := client.Login("admin@gmail.com", "admin")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token != "the-token" {
		t.Fatalf("unexpected token: %q", token)
	}
}

// Отказ сервера превращается в ошибку с текстом тела
func TestClient_Login_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)

	_, err := client.Login("admin@gmail.com", "wrong")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "Invalid credentials") {
		t.Fatalf("error must carry the server body, got: %v", err)
	}
}

// 200 без Set-Cookie — нарушение контракта
func TestClient_Login_NoCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "Login successful"})
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)

	if _, err := client.Login("admin@gmail.com", "admin"); err == nil {
		t.Fatal("expected error for missing cookie, got nil")
	}
}

// Verify: 401 — не ошибка, а authenticated=false
func TestClient_Verify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		cookie, err := r.Cookie("sso_token")
		if err != nil || cookie.Value != "good" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.VerifyResponse{Authenticated: false, Error: "Invalid token"})
			return
		}

		json.NewEncoder(w).Encode(models.VerifyResponse{
			Authenticated: true,
			User: &models.TokenPayload{
				User: models.User{ID: "u-1", Email: "admin@gmail.com"},
				Iat:  1, Exp: 2,
			},
		})
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)

	res, err := client.Verify("good")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !res.Authenticated || res.User == nil || res.User.User.ID != "u-1" {
		t.Fatalf("unexpected response: %+v", res)
	}

	res, err = client.Verify("bad")
	if err != nil {
		t.Fatalf("negative verify must not be an error: %v", err)
	}
	if res.Authenticated || res.Error != "Invalid token" {
		t.Fatalf("unexpected response: %+v", res)
	}
}

// CRUD-методы ходят на правильные пути с cookie
func TestClient_Todos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/todos":
			json.NewEncoder(w).Encode([]models.Todo{{ID: "t-1"}, {ID: "t-2"}})

		case r.Method == http.MethodGet && r.URL.Path == "/todos/u-1":
			if c, err := r.Cookie("sso_token"); err != nil || c.Value != "tok" {
				t.Fatal("session cookie missing on user todos request")
			}
			json.NewEncoder(w).Encode([]models.Todo{{ID: "t-1", UserID: "u-1"}})

		case r.Method == http.MethodPost && r.URL.Path == "/todos":
			var req models.TodoRequest
			json.NewDecoder(r.Body).Decode(&req)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.TodoResponse{
				Message: "Todo added successfully",
				Data:    models.Todo{ID: "t-3", UserID: "u-1", Title: req.Title},
			})

		case r.Method == http.MethodPut && r.URL.Path == "/todos/t-3":
			json.NewEncoder(w).Encode(models.TodoResponse{Message: "Todo updated successfully"})

		case r.Method == http.MethodDelete && r.URL.Path == "/todos/t-3":
			json.NewEncoder(w).Encode(models.MessageResponse{Message: "Todo deleted successfully"})

		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)

	todos, err := client.Todos()
	if err != nil || len(todos) != 2 {
		t.Fatalf("todos: %v, %+v", err, todos)
	}

	mine, err := client.TodosForUser("u-1", "tok")
	if err != nil || len(mine) != 1 {
		t.Fatalf("todos for user: %v, %+v", err, mine)
	}

	created, err := client.AddTodo("title", "desc", "tok")
	if err != nil || created.Data.ID != "t-3" {
		t.Fatalf("add todo: %v, %+v", err, created)
	}

	updated, err := client.UpdateTodo("t-3", "new", "nd", "tok")
	if err != nil || updated.Message != "Todo updated successfully" {
		t.Fatalf("update todo: %v, %+v", err, updated)
	}

	deleted, err := client.DeleteTodo("t-3", "tok")
	if err != nil || deleted.Message != "Todo deleted successfully" {
		t.Fatalf("delete todo: %v, %+v", err, deleted)
	}
}

// 404 при удалении — ошибка с телом сервера
func TestClient_DeleteTodo_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "Todo not found"})
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)

	_, err := client.DeleteTodo("missing", "tok")
	if err == nil || !strings.Contains(err.Error(), "Todo not found") {
		t.Fatalf("expected not-found error, got: %v", err)
	}
}
