// Package api реализует HTTP-слой сервера.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - подключение middleware (логирование, CORS, проверка сессионной cookie).
package api

import (
	"encoding/json"
	"net/http"

	"github.com/dkovalev/go-sso-todo/internal/server/config"
	"github.com/dkovalev/go-sso-todo/internal/server/middleware"
	"github.com/dkovalev/go-sso-todo/internal/server/service"
	"github.com/dkovalev/go-sso-todo/internal/shared/logger"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// ErrorResponse — стандартный формат ошибки API: {"error": "..."}.
//
// Внимание: PUT/DELETE /todos/{id} исторически отвечают полем "message"
// даже на ошибках — эта несогласованность зафиксирована в контракте
// и обрабатывается отдельными хелперами.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: проверка сессионной cookie (middleware);
//   - Cfg: конфиг — нужен для атрибутов cookie (env-зависимые флаги).
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.SessionVerifier
	Cfg      *config.Config
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.SessionVerifier, cfg *config.Config) *Handler {
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,
		Cfg:      cfg,
	}
}

// WriteJSON сериализует v с указанным статусом.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError выводит ошибку в формате {"error": "..."}.
func WriteError(w http.ResponseWriter, status int, err error) {
	WriteJSON(w, status, ErrorResponse{Error: err.Error()})
}

// WriteMessage выводит ответ в формате {"message": "..."} с указанным статусом.
// Используется и для успехов, и для ошибок маршрутов PUT/DELETE /todos/{id}.
func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"message": msg})
}
