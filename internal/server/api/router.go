package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/dkovalev/go-sso-todo/internal/server/metrics"
	"github.com/dkovalev/go-sso-todo/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - middleware логирования и CORS для всех запросов;
//   - rate limit и метрики, если включены в конфиге;
//   - публичные эндпоинты: /, /login, /verify, /logout, /swagger;
//   - GET /todos — тоже публичный: у него нет auth-gate
//     (открытый вопрос, не чиним молча);
//   - защищённые сессионной cookie маршруты todo. Они разбиты на две
//     группы из-за разного формата тела 401: GET/POST отвечают
//     {"error": ...}, PUT/DELETE — {"message": ...}.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())
	// credentialed CORS для двух браузерных приложений
	r.Use(middleware.CORSMiddleware(h.Cfg.CORS.AllowedOrigins))

	if h.Cfg.Security.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(h.Cfg.Security.RateLimit.RPS, h.Cfg.Security.RateLimit.Burst)
		r.Use(rl.Middleware())
	}

	if h.Cfg.Observability.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		collector := metrics.NewCollector(registry)
		r.Use(middleware.MetricsMiddleware(collector))
		r.Method(http.MethodGet, h.Cfg.Observability.Metrics.Path, metrics.Handler(registry))
	}

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Публичные пути
	r.Get("/", h.Root)
	r.Post("/login", h.Login)
	r.Get("/verify", h.Verify)
	r.Post("/logout", h.Logout)
	r.Get("/todos", h.ListTodos) // без auth-gate, контракт эндпоинта

	// защищённые пути, 401 в формате {"error": ...}
	r.Group(func(r chi.Router) {
		r.Use(h.Verifier.AuthMiddleware("error"))
		r.Get("/todos/{userId}", h.ListUserTodos) // {userId} принимается, но игнорируется
		r.Post("/todos", h.CreateTodo)
	})

	// защищённые пути, 401 в формате {"message": ...}
	r.Group(func(r chi.Router) {
		r.Use(h.Verifier.AuthMiddleware("message"))
		r.Put("/todos/{id}", h.UpdateTodo)
		r.Delete("/todos/{id}", h.DeleteTodo)
	})

	return r
}
