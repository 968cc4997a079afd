// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dkovalev/go-sso-todo/internal/server/crypto"
	"github.com/dkovalev/go-sso-todo/internal/shared/models"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// sessionUserKey — ключ контекста, под которым хранится пользователь
// из сессионного токена.
const sessionUserKey ctxKey = "session_user"

// SessionVerifier инкапсулирует параметры проверки сессионного токена из cookie.
//
// Используется в HTTP middleware для:
//   - чтения cookie sso_token
//   - проверки подписи и срока жизни токена
//   - извлечения вложенной записи пользователя из claims.
type SessionVerifier struct {
	SigningKey string // симметричный ключ подписи (HS256)
	CookieName string // имя cookie с токеном (sso_token)
}

// NewSessionVerifier создаёт новый SessionVerifier с заданными параметрами.
func NewSessionVerifier(signingKey, cookieName string) *SessionVerifier {
	return &SessionVerifier{SigningKey: signingKey, CookieName: cookieName}
}

// UserFromContext извлекает пользователя сессии из контекста.
//
// Возвращает:
//   - запись пользователя
//   - false, если пользователь не аутентифицирован
func UserFromContext(ctx context.Context) (models.User, bool) {
	v := ctx.Value(sessionUserKey)
	u, ok := v.(models.User)
	return u, ok
}

// AuthMiddleware возвращает HTTP middleware для проверки сессионной cookie.
//
// Middleware:
//   - читает cookie с токеном
//   - валидирует подпись и срок жизни
//   - кладёт запись пользователя из токена в context.Context
//
// В случае любой ошибки (нет cookie, битый или просроченный токен)
// возвращает HTTP 401 с JSON-телом {<errField>: "Unauthorized"}.
//
// errField задаёт имя поля в теле ошибки: исторически часть маршрутов
// отвечает {"error": ...}, часть — {"message": ...}. Эта
// несогласованность — зафиксированная часть контракта.
func (v *SessionVerifier) AuthMiddleware(errField string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(v.CookieName)
			if err != nil || cookie.Value == "" {
				writeUnauthorized(w, errField)
				return
			}

			claims, err := crypto.ParseSessionToken(cookie.Value, v.SigningKey)
			if err != nil {
				// просроченный и битый токен наружу неразличимы
				writeUnauthorized(w, errField)
				return
			}

			ctx := context.WithValue(r.Context(), sessionUserKey, claims.User)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, errField string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{errField: "Unauthorized"})
}
