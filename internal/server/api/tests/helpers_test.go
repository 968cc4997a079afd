package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkovalev/go-sso-todo/internal/server/api"
	"github.com/dkovalev/go-sso-todo/internal/server/config"
	"github.com/dkovalev/go-sso-todo/internal/server/middleware"
	"github.com/dkovalev/go-sso-todo/internal/server/repository"
	"github.com/dkovalev/go-sso-todo/internal/server/service"
	"github.com/dkovalev/go-sso-todo/internal/shared/logger"
	"github.com/dkovalev/go-sso-todo/internal/shared/models"
)

// testEnv поднимает полный HTTP-стек на хранилище в памяти.
type testEnv struct {
	router http.Handler
	users  []models.User
}

func newTestEnv(t *testing.T, env string) *testEnv {
	t.Helper()

	cfg := &config.Config{Env: env}
	config.ApplyDefaults(cfg)

	users := repository.SeedUsers()
	repos := service.Repositories{
		Users: repository.NewMemoryUsersRepository(users),
		Todos: repository.NewMemoryTodosRepository(repository.SeedTodos(users)),
	}

	svc := service.NewServices(repos, cfg)
	verifier := middleware.NewSessionVerifier(cfg.Auth.SigningKey, cfg.Auth.Cookie.Name)
	handler := api.NewHandler(svc, logger.NewHTTPLogger(), verifier, cfg)

	return &testEnv{
		router: api.NewRouter(handler),
		users:  users,
	}
}

// do выполняет запрос к роутеру. body сериализуется в JSON,
// cookie (если не пустая) добавляется как сессионная.
func (e *testEnv) do(t *testing.T, method, path string, body any, sessionToken string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: "sso_token", Value: sessionToken})
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// login выполняет вход и возвращает значение сессионной cookie.
func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()

	rr := e.do(t, http.MethodPost, "/login", models.LoginRequest{Email: email, Password: password}, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", rr.Code, rr.Body.String())
	}

	for _, c := range rr.Result().Cookies() {
		if c.Name == "sso_token" && c.Value != "" {
			return c.Value
		}
	}
	t.Fatal("session cookie not set")
	return ""
}

// decode парсит JSON-тело ответа в out.
func decode(t *testing.T, rr *httptest.ResponseRecorder, out any) {
	t.Helper()

	if err := json.Unmarshal(rr.Body.Bytes(), out); err != nil {
		t.Fatalf("decode body %q: %v", rr.Body.String(), err)
	}
}

// sessionCookie достаёт сессионную cookie из ответа (или nil).
func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == "sso_token" {
			return c
		}
	}
	return nil
}
