// Package config отвечает за:
// - чтение server.yaml
// - подстановку переменных окружения вида ${SSO_SECRET_KEY}
// - проставление дефолтов
// - валидацию
//
// Важно: в отличие от "взрослых" систем сервер обязан стартовать вообще
// без окружения — это локальное демо. Поэтому отсутствующий секрет не
// ошибка, а откат на захардкоженный дефолт (см. DefaultSigningKey).
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/stretchr/testify/assert/yaml"
)

// DefaultSigningKey — дефолтный ключ подписи сессионного токена.
//
// Известная слабость демо-системы: если SSO_SECRET_KEY не задан,
// токены подписываются строкой "secret". Сервер при этом громко
// предупреждает в лог, но не отказывается стартовать.
const DefaultSigningKey = "secret"

// EnvProduction — значение env, при котором cookie получает
// флаги HttpOnly и Secure.
const EnvProduction = "production"

// Config — корневая структура всего конфига сервера.
type Config struct {
	Env           string              `yaml:"env"` // dev|production
	Server        ServerConfig        `yaml:"server"`
	Auth          AuthConfig          `yaml:"auth"`
	CORS          CORSConfig          `yaml:"cors"`
	DB            DBConfig            `yaml:"db"`
	Security      SecurityConfig      `yaml:"security"`
	Observability ObservabilityConfig `yaml:"observability"`
	Log           LogConfig           `yaml:"log"`
}

// ServerConfig — настройки HTTP-сервера.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // время на graceful shutdown
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`   // лимит размера тела запроса
}

// AuthConfig — настройки сессионного токена и cookie.
type AuthConfig struct {
	// SigningKey может содержать ${SSO_SECRET_KEY}
	SigningKey string       `yaml:"signing_key"`
	TokenTTL   time.Duration `yaml:"token_ttl"`
	Cookie     CookieConfig  `yaml:"cookie"`
}

// CookieConfig — параметры cookie sso_token.
//
// HttpOnly/Secure выставляются только в production-режиме (Env),
// SameSite всегда strict.
type CookieConfig struct {
	Name   string `yaml:"name"`
	MaxAge int    `yaml:"max_age"` // секунды
}

// CORSConfig — cross-origin контракт API.
//
// Ровно два браузерных origin'а (main и external приложения),
// credentialed-запросы включены всегда.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DBConfig — настройки подключения к базе данных.
//
// Пустой DSN означает хранилище в памяти (режим демо по умолчанию).
type DBConfig struct {
	DSN string `yaml:"dsn"`
}

// SecurityConfig — ограничения/защита.
type SecurityConfig struct {
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig — простой rate limit по IP.
// По умолчанию выключен: существующие фронтенды троттлинга не ожидают.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled"`
	RPS     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
}

// ObservabilityConfig — метрики.
type ObservabilityConfig struct {
	Metrics MetricsConfig `yaml:"metrics"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LogConfig — настройки логирования (zap).
type LogConfig struct {
	Level string `yaml:"level"` // debug|info|warn|error
}

// Load читает YAML, подставляет переменные окружения вида ${VAR},
// затем парсит в структуру, проставляет дефолты и валидирует.
//
// Если файла нет — это не ошибка: демо умеет стартовать целиком
// на дефолтах.
func Load(path string) (*Config, error) {
	var cfg Config

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		// Подставляем переменные окружения в текст YAML:
		// signing_key: "${SSO_SECRET_KEY}" -> signing_key: "реальное_значение"
		expanded := ExpandEnvStrict(string(raw))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("не удалось распарсить yaml: %w", err)
		}
	case os.IsNotExist(err):
		// конфиг опционален
	default:
		return nil, fmt.Errorf("не удалось прочитать конфиг: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ExpandEnvStrict заменяет ${VAR} на значение из окружения.
// Если переменная не задана — оставляем ${VAR} как есть,
// а ApplyDefaults подставит дефолт.
func ExpandEnvStrict(s string) string {
	re := regexp.MustCompile(`\$\{([A-Z0-9_]+)\}`)
	return re.ReplaceAllStringFunc(s, func(m string) string {
		sub := re.FindStringSubmatch(m)
		if len(sub) != 2 {
			return m
		}
		if val, ok := os.LookupEnv(sub[1]); ok {
			return val
		}
		return m
	})
}

// ApplyDefaults — дефолтные значения, если в yaml поле не задано.
//
// Дефолты позволяют поднять сервер вообще без конфига и окружения:
// порт 4000, токен на час, cookie sso_token, origin'ы локальных
// приложений.
func ApplyDefaults(cfg *Config) {
	if cfg.Env == "" {
		if v := os.Getenv("SSO_ENV"); v != "" {
			cfg.Env = v
		} else {
			cfg.Env = "dev"
		}
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 5 * time.Second
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = 1 << 20 // 1 MiB
	}

	key := strings.TrimSpace(cfg.Auth.SigningKey)
	// ${SSO_SECRET_KEY} не подставился — переменная не задана
	if key == "" || strings.Contains(key, "${") {
		cfg.Auth.SigningKey = DefaultSigningKey
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = time.Hour
	}
	if cfg.Auth.Cookie.Name == "" {
		cfg.Auth.Cookie.Name = "sso_token"
	}
	if cfg.Auth.Cookie.MaxAge == 0 {
		cfg.Auth.Cookie.MaxAge = 3600
	}

	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{
			"http://localhost:5173",
			"http://localhost:5174",
		}
	}

	if cfg.Observability.Metrics.Path == "" {
		cfg.Observability.Metrics.Path = "/metrics"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// UsesDefaultSigningKey сообщает, что сервер работает на дефолтном ключе.
// main использует это для предупреждения в лог.
func (c *Config) UsesDefaultSigningKey() bool {
	return c.Auth.SigningKey == DefaultSigningKey
}

// Validate проверяет, что конфиг заполнен корректно.
// Если что-то не так — возвращаем ошибку и сервер НЕ стартует.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port некорректен: %d", c.Server.Port)
	}

	if c.Env != "dev" && c.Env != EnvProduction {
		return fmt.Errorf("env должен быть dev|production (сейчас %q)", c.Env)
	}

	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.token_ttl должен быть > 0")
	}
	if c.Auth.Cookie.MaxAge <= 0 {
		return errors.New("auth.cookie.max_age должен быть > 0")
	}

	// contract: ровно два разрешённых origin'а
	if len(c.CORS.AllowedOrigins) != 2 {
		return fmt.Errorf("cors.allowed_origins должен содержать ровно 2 origin'а (сейчас %d)", len(c.CORS.AllowedOrigins))
	}
	for _, o := range c.CORS.AllowedOrigins {
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("cors.allowed_origins содержит некорректный origin: %q", o)
		}
	}

	if c.Security.RateLimit.Enabled {
		if c.Security.RateLimit.RPS <= 0 {
			return errors.New("security.rate_limit.rps должен быть > 0 при включённом rate_limit")
		}
		if c.Security.RateLimit.Burst <= 0 {
			return errors.New("security.rate_limit.burst должен быть > 0 при включённом rate_limit")
		}
	}

	return nil
}

// ApplyEnvOverrides — даёт возможность переопределять некоторые настройки
// через переменные окружения без ${...} в yaml.
// Например SERVER_PORT=9090 переопределит server.port.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		c.DB.DSN = v
	}
}
