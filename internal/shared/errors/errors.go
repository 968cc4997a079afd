// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля и т.п.)
	ErrInvalidInput = errors.New("Email and password are required")
	// Неверные учётные данные
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("Unauthorized")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
)

// только для токенов
//
// Наружу оба случая отдаются одинаково (generic 401): контракт API
// не различает просроченный и битый токен. Разделение оставлено для
// логов и тестов.
var (
	// Токен просрочен
	ErrTokenExpired = errors.New("token expired")
	// Подпись не сошлась либо токен не парсится
	ErrTokenInvalid = errors.New("Invalid token")
)
