// Package webapp реализует два демонстрационных web-приложения,
// потребляющих единую SSO-сессию auth API.
//
// Оба варианта собраны из одного кода и различаются переменной окружения
// APP_VARIANT:
//   - "main" — приложение с собственной формой логина (порт 5173);
//   - "external" — приложение без формы логина: неавторизованного
//     пользователя оно отправляет логиниться в "main" с параметром
//     returnUrl (порт 5174).
//
// Приложения рендерятся на сервере, поэтому каждая загрузка страницы
// заново проверяет сессию запросом GET /verify к auth API.
package webapp

import (
	"fmt"
	"os"
)

// Варианты приложения.
const (
	VariantMain     = "main"
	VariantExternal = "external"
)

// Config содержит настройки web-приложения, читаемые из окружения.
type Config struct {
	// Variant — вариант приложения: "main" или "external".
	Variant string
	// Addr — адрес HTTP-сервера приложения (например, ":5173").
	Addr string
	// APIURL — базовый URL auth API.
	APIURL string
	// MainAppURL — адрес "main"-приложения; нужен варианту "external",
	// чтобы строить ссылку на чужую форму логина с returnUrl.
	MainAppURL string
}

// FromEnv собирает конфигурацию из переменных окружения
// APP_VARIANT, APP_ADDR, API_URL и MAIN_APP_URL.
//
// Значения по умолчанию повторяют демо-окружение: вариант "main" на
// :5173, вариант "external" на :5174, API на http://localhost:4000.
func FromEnv() (Config, error) {
	cfg := Config{
		Variant:    os.Getenv("APP_VARIANT"),
		Addr:       os.Getenv("APP_ADDR"),
		APIURL:     os.Getenv("API_URL"),
		MainAppURL: os.Getenv("MAIN_APP_URL"),
	}

	if cfg.Variant == "" {
		cfg.Variant = VariantMain
	}
	if cfg.Variant != VariantMain && cfg.Variant != VariantExternal {
		return Config{}, fmt.Errorf("недопустимый APP_VARIANT %q (ожидается %q или %q)",
			cfg.Variant, VariantMain, VariantExternal)
	}

	if cfg.Addr == "" {
		if cfg.Variant == VariantMain {
			cfg.Addr = ":5173"
		} else {
			cfg.Addr = ":5174"
		}
	}
	if cfg.APIURL == "" {
		cfg.APIURL = "http://localhost:4000"
	}
	if cfg.MainAppURL == "" {
		cfg.MainAppURL = "http://localhost:5173"
	}

	return cfg, nil
}
