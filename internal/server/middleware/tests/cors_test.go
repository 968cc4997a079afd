package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkovalev/go-sso-todo/internal/server/middleware"
)

var testOrigins = []string{"http://localhost:5173", "http://localhost:5174"}

func corsHandler() http.Handler {
	return middleware.CORSMiddleware(testOrigins)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)
}

// Разрешённый origin отражается эхом, wildcard не используется
func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	for _, origin := range testOrigins {
		req := httptest.NewRequest(http.MethodGet, "/todos", nil)
		req.Header.Set("Origin", origin)
		rr := httptest.NewRecorder()

		corsHandler().ServeHTTP(rr, req)

		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != origin {
			t.Fatalf("expected origin echo %q, got %q", origin, got)
		}
		if rr.Header().Get("Access-Control-Allow-Credentials") != "true" {
			t.Fatal("credentials header missing")
		}
		if rr.Header().Get("Vary") != "Origin" {
			t.Fatal("Vary: Origin header missing")
		}
	}
}

// Посторонний origin не получает CORS-заголовков
func TestCORSMiddleware_ForbiddenOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Origin", "http://evil.example")
	rr := httptest.NewRecorder()

	corsHandler().ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected allow-origin header: %q", got)
	}
	// сам запрос при этом обрабатывается
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
}

// Прифлайт завершается 204 и не доходит до обработчика
func TestCORSMiddleware_Preflight(t *testing.T) {
	handler := middleware.CORSMiddleware(testOrigins)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not be called on preflight")
		}),
	)

	req := httptest.NewRequest(http.MethodOptions, "/todos", nil)
	req.Header.Set("Origin", testOrigins[0])
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != testOrigins[0] {
		t.Fatalf("expected origin echo, got %q", got)
	}
}
