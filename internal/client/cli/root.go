// Package cli реализует командный интерфейс (CLI) клиента auth API.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локального сессионного токена из конфигурационного файла;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkovalev/go-sso-todo/internal/client/config"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// В структуре хранятся параметры подключения к серверу и загруженный
// сессионный токен. Экземпляр App создаётся при построении root-команды
// и передаётся в подкоманды.
type App struct {
	// ServerURL — базовый URL auth API (например, "http://localhost:4000").
	ServerURL string

	// CredsPath — путь к файлу с сохранённым токеном.
	CredsPath string
	// Creds — загруженные учётные данные из файла конфигурации.
	// Может быть nil, если загрузка не выполнялась или завершилась ошибкой.
	Creds *config.Credentials
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке
// (команда version). В PersistentPreRunE выполняется инициализация
// состояния приложения: определяется путь к файлу токена и загружается
// сохранённая сессия.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{
		ServerURL: "http://localhost:4000",
	}

	cmd := &cobra.Command{
		Use:   "ssotodo",
		Short: "ssotodo CLI — третий потребитель SSO-сессии (после двух web-приложений)",
		Long: `ssotodo CLI.

Команды:
  login    Логин (сохраняет сессионный токен локально)
  verify   Проверка сессии на сервере
  logout   Логаут (стирает локальный токен; на сервере отзыва нет)
  todo     Работа со списком дел: list/add/update/delete
  version  Версия и дата сборки

Примеры:

Логин:
  ssotodo login --email admin@gmail.com --password admin
  (без --password пароль запрашивается интерактивно)

Список своих todo:
  ssotodo todo list

Добавить:
  ssotodo todo add --title "X" --description "Y"
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			app.CredsPath = p

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return err
			}
			app.Creds = creds
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", "http://localhost:4000", "server base URL")

	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewVerifyCmd(app))
	cmd.AddCommand(NewLogoutCmd(app))
	cmd.AddCommand(NewTodoCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
