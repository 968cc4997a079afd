package tests

import (
	"testing"

	"github.com/dkovalev/go-sso-todo/internal/webapp"
)

// Дефолты для варианта main
func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("APP_VARIANT", "")
	t.Setenv("APP_ADDR", "")
	t.Setenv("API_URL", "")
	t.Setenv("MAIN_APP_URL", "")

	cfg, err := webapp.FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.Variant != webapp.VariantMain || cfg.Addr != ":5173" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.APIURL != "http://localhost:4000" {
		t.Fatalf("unexpected api url: %q", cfg.APIURL)
	}
}

// Вариант external слушает :5174
func TestFromEnv_ExternalDefaults(t *testing.T) {
	t.Setenv("APP_VARIANT", "external")
	t.Setenv("APP_ADDR", "")

	cfg, err := webapp.FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.Variant != webapp.VariantExternal || cfg.Addr != ":5174" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

// Неизвестный вариант — ошибка
func TestFromEnv_BadVariant(t *testing.T) {
	t.Setenv("APP_VARIANT", "mobile")

	if _, err := webapp.FromEnv(); err == nil {
		t.Fatal("expected error for unknown variant")
	}
}
