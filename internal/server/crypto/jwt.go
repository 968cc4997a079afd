// Package crypto содержит работу с сессионным токеном.
//
// Пакет отвечает за:
//   - выпуск подписанного токена с полной записью пользователя внутри;
//   - проверку подписи и срока жизни токена.
//
// Токен — единственный носитель сессии: сервер не хранит ни списка
// выданных токенов, ни denylist'а. Поэтому logout лишь стирает cookie
// у клиента, а перехваченный токен остаётся рабочим до истечения exp.
// Ротации ключа и refresh-токенов нет.
package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	serr "github.com/dkovalev/go-sso-todo/internal/shared/errors"
	"github.com/dkovalev/go-sso-todo/internal/shared/models"
)

// JWTConfig описывает параметры выпуска сессионного токена.
type JWTConfig struct {
	// SigningKey — секретный ключ для подписи токена (HS256).
	// Общий на весь процесс; дефолт "secret" — известная слабость демо.
	SigningKey string
	// TokenTTL — срок жизни токена (1 час по умолчанию).
	TokenTTL time.Duration
}

// SessionClaims — claims сессионного токена.
//
// В отличие от классического sub-токена внутри лежит ВСЯ запись
// пользователя, включая пароль открытым текстом: /verify возвращает
// payload как есть, и существующие фронтенды на это полагаются.
type SessionClaims struct {
	User models.User `json:"user"`
	jwt.RegisteredClaims
}

// NewSessionToken создаёт и подписывает сессионный токен для пользователя.
//
// Токен содержит:
//   - user (полная запись пользователя)
//   - iat (IssuedAt)
//   - exp (ExpiresAt = iat + TokenTTL)
//
// Используется алгоритм подписи HS256.
// В случае ошибки подписи возвращается непустая ошибка.
func NewSessionToken(user models.User, cfg JWTConfig) (string, error) {
	now := time.Now()

	claims := SessionClaims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}

// ParseSessionToken проверяет подпись и срок жизни токена.
//
// Возвращает:
//   - claims при успехе;
//   - serr.ErrTokenExpired, если токен просрочен;
//   - serr.ErrTokenInvalid, если подпись не сошлась или токен не парсится.
//
// Наружу API оба случая отдаёт одинаковым 401 — различие нужно
// только для логов и тестов.
func ParseSessionToken(raw, signingKey string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	_, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return []byte(signingKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, serr.ErrTokenExpired
		}
		return nil, serr.ErrTokenInvalid
	}

	return claims, nil
}

// Payload переводит claims в wire-модель ответа /verify.
func (c *SessionClaims) Payload() models.TokenPayload {
	p := models.TokenPayload{User: c.User}
	if c.IssuedAt != nil {
		p.Iat = c.IssuedAt.Unix()
	}
	if c.ExpiresAt != nil {
		p.Exp = c.ExpiresAt.Unix()
	}
	return p
}
