// @title           SSO Todo API
// @version         1.0
// @description     Single sign-on demo: auth API issuing a signed session cookie
// @description     shared by multiple front-end applications.

// @host      localhost:4000
// @BasePath  /
//
// Package main содержит точку входа auth API сервера.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml;
//   - выбор хранилища: память (по умолчанию) или PostgreSQL при заданном DSN;
//   - создание репозиториев, сервисов, middleware и HTTP-обработчиков;
//   - настройку и запуск HTTP-сервера с заданными таймаутами;
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT);
//   - корректное (graceful) завершение работы сервера с таймаутом.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
// HTTP API сервера реализовано в пакете internal/server/api и документируется
// с помощью OpenAPI (Swagger).
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/dkovalev/go-sso-todo/internal/server/api"
	"github.com/dkovalev/go-sso-todo/internal/server/config"
	"github.com/dkovalev/go-sso-todo/internal/server/middleware"
	"github.com/dkovalev/go-sso-todo/internal/server/repository"
	"github.com/dkovalev/go-sso-todo/internal/server/service"
	"github.com/dkovalev/go-sso-todo/internal/shared/logger"

	_ "github.com/dkovalev/go-sso-todo/swagger/docs"
)

func main() {
	httpLogger := logger.NewHTTPLogger()
	sugar := httpLogger.Logger.Sugar()

	if err := godotenv.Load(); err != nil {
		sugar.Warnf("no .env file loaded, error: %v", err)
	}

	cfg, err := config.Load("./configs/server.yaml")
	if err != nil {
		sugar.Fatal(err)
	}
	cfg.ApplyEnvOverrides()

	// дефолтный ключ подписи — известная слабость демо, предупреждаем громко
	if cfg.UsesDefaultSigningKey() {
		sugar.Warn("SSO_SECRET_KEY is not set, using the hardcoded fallback signing key — do not expose this server")
	}

	// выбираем хранилище: память (дефолт) или postgres при заданном DSN
	repos := service.Repositories{}
	if cfg.DB.DSN != "" {
		if err := config.Init(cfg.DB.DSN); err != nil {
			sugar.Fatal(err)
		}
		db := config.GetDB()
		defer func() {
			if db != nil {
				db.Close()
			}
		}()

		repos.Users = repository.NewUsersRepository(db)
		repos.Todos = repository.NewTodosRepository(db)
	} else {
		users := repository.SeedUsers()
		repos.Users = repository.NewMemoryUsersRepository(users)
		repos.Todos = repository.NewMemoryTodosRepository(repository.SeedTodos(users))
	}

	// создаём сервис
	svc := service.NewServices(repos, cfg)
	// проверка сессионной cookie
	verifier := middleware.NewSessionVerifier(cfg.Auth.SigningKey, cfg.Auth.Cookie.Name)
	// создаём хандлер
	handler := api.NewHandler(svc, httpLogger, verifier, cfg)
	// создаём роутер
	router := api.NewRouter(handler)
	// создаём сервер
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		sugar.Infof("server started on %s", addr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единая обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}
