// Package main содержит точку входа демонстрационных web-приложений.
//
// Один бинарник обслуживает оба варианта приложения: переменная окружения
// APP_VARIANT выбирает между "main" (с формой логина) и "external"
// (с SSO-ссылкой на чужой логин). Пакет отвечает за:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - сборку конфигурации приложения из окружения;
//   - запуск HTTP-сервера и корректное (graceful) завершение по сигналам.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/dkovalev/go-sso-todo/internal/shared/logger"
	"github.com/dkovalev/go-sso-todo/internal/webapp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded, error: %v", err)
	}

	cfg, err := webapp.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	appLogger := logger.NewAppLogger(cfg.Variant)
	sugar := appLogger.Sugar()

	app, err := webapp.NewApp(cfg, appLogger)
	if err != nil {
		sugar.Fatal(err)
	}

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      app.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infof("web app %q started on %s (api: %s)", cfg.Variant, cfg.Addr, cfg.APIURL)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalf("web app stopped with error: %v", err)
	}
	sugar.Info("web app gracefully stopped")
}
