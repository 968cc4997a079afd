package tests

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dkovalev/go-sso-todo/internal/server/crypto"
	"github.com/dkovalev/go-sso-todo/internal/server/middleware"
	"github.com/dkovalev/go-sso-todo/internal/shared/models"
)

// Вспомогательная функция для сессионного токена
func makeToken(t *testing.T, key string, ttl time.Duration) string {
	t.Helper()

	token, err := crypto.NewSessionToken(models.User{
		ID:    "u-1",
		Email: "admin@gmail.com",
		Role:  "admin",
	}, crypto.JWTConfig{SigningKey: key, TokenTTL: ttl})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

// Успех
func TestAuthMiddleware_OK(t *testing.T) {
	v := middleware.NewSessionVerifier("secret", "sso_token")

	token := makeToken(t, "secret", time.Hour)

	called := false
	handler := v.AuthMiddleware("error")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true

		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			t.Fatal("user not found in context")
		}
		if user.ID != "u-1" {
			t.Fatalf("unexpected user: %+v", user)
		}

		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sso_token", Value: token})
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	if !called {
		t.Fatal("handler was not called")
	}
}

// Нет cookie
func TestAuthMiddleware_MissingCookie(t *testing.T) {
	v := middleware.NewSessionVerifier("secret", "sso_token")

	handler := v.AuthMiddleware("error")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"error":"Unauthorized"`) {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

// Имя поля ошибки зависит от группы маршрутов
func TestAuthMiddleware_MessageField(t *testing.T) {
	v := middleware.NewSessionVerifier("secret", "sso_token")

	handler := v.AuthMiddleware("message")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodPut, "/todos/1", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"message":"Unauthorized"`) {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

// Просроченный токен
func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	v := middleware.NewSessionVerifier("secret", "sso_token")

	token := makeToken(t, "secret", -time.Minute)

	handler := v.AuthMiddleware("error")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sso_token", Value: token})
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
}

// Чужой ключ подписи
func TestAuthMiddleware_WrongKey(t *testing.T) {
	v := middleware.NewSessionVerifier("secret", "sso_token")

	token := makeToken(t, "other-key", time.Hour)

	handler := v.AuthMiddleware("error")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sso_token", Value: token})
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
}
