package service

import (
	"context"
	"errors"

	"github.com/dkovalev/go-sso-todo/internal/server/config"
	"github.com/dkovalev/go-sso-todo/internal/server/crypto"
	serr "github.com/dkovalev/go-sso-todo/internal/shared/errors"
	"github.com/dkovalev/go-sso-todo/internal/shared/models"
)

// AuthService реализует бизнес-логику входа и выпуска сессионного токена.
//
// Ответственность:
//   - проверка учётных данных (точное совпадение email и пароля)
//   - выпуск подписанного токена с полной записью пользователя
//
// Ни refresh-токенов, ни server-side сессий нет: вся сессия — это
// сам токен в cookie.
type AuthService struct {
	users UsersRepo
	jwt   crypto.JWTConfig
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,
		jwt: crypto.JWTConfig{
			SigningKey: cfg.Auth.SigningKey,
			TokenTTL:   cfg.Auth.TokenTTL,
		},
	}
}

// Login аутентифицирует пользователя и выдаёт сессионный токен.
//
// Поведение:
//   - пустой email или пароль — ErrInvalidInput (API отвечает 400);
//   - нет пользователя с таким email И паролем — ErrInvalidCredentials
//     (тоже 400: API не различает "нет такого email" и "не тот пароль");
//   - успех — пользователь и подписанный токен.
//
// Никакой нормализации ввода: сравнение строго посимвольное,
// "Admin@gmail.com" не подойдёт.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	if email == "" || password == "" {
		return models.User{}, "", serr.ErrInvalidInput
	}

	user, err := s.users.GetByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return models.User{}, "", serr.ErrInvalidCredentials
		}
		return models.User{}, "", err
	}

	token, err := crypto.NewSessionToken(user, s.jwt)
	if err != nil {
		return models.User{}, "", serr.ErrInternal
	}

	return user, token, nil
}

// VerifyToken проверяет токен и возвращает его payload.
//
// Ошибочные исходы (просрочен/битый) различаются только внутренне;
// наружу API в обоих случаях отвечает 401 "Invalid token".
func (s *AuthService) VerifyToken(token string) (models.TokenPayload, error) {
	claims, err := crypto.ParseSessionToken(token, s.jwt.SigningKey)
	if err != nil {
		return models.TokenPayload{}, err
	}
	return claims.Payload(), nil
}
