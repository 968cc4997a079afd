package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkovalev/go-sso-todo/internal/client/api"
	"github.com/dkovalev/go-sso-todo/internal/client/config"
)

// NewLoginCmd создаёт команду входа в систему.
//
// Команда отправляет email и пароль на POST /login, извлекает сессионный
// токен из cookie ответа и сохраняет его в локальный файл. Если флаг
// --password не задан и ввод идёт с терминала, пароль запрашивается
// интерактивно без эха.
func NewLoginCmd(app *App) *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Войти и сохранить сессионный токен",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return fmt.Errorf("флаг --email обязателен")
			}

			if password == "" {
				p, err := promptPassword(cmd)
				if err != nil {
					return err
				}
				password = p
			}

			client := api.NewClient(app.ServerURL)
			token, err := client.Login(email, password)
			if err != nil {
				return fmt.Errorf("логин не выполнен: %w", err)
			}

			if err := config.Save(app.CredsPath, &config.Credentials{Token: token}); err != nil {
				return fmt.Errorf("не удалось сохранить токен: %w", err)
			}

			cmd.Printf("Вход выполнен, токен сохранён в %s\n", app.CredsPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email пользователя")
	cmd.Flags().StringVar(&password, "password", "", "пароль (если не задан — запрашивается интерактивно)")

	return cmd
}

// promptPassword запрашивает пароль у пользователя.
//
// Если stdin — терминал, ввод выполняется без эха через x/term, иначе
// читается одна строка как есть (удобно для пайпов и скриптов).
func promptPassword(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		cmd.Print("Пароль: ")
		raw, err := term.ReadPassword(fd)
		cmd.Println()
		if err != nil {
			return "", fmt.Errorf("не удалось прочитать пароль: %w", err)
		}
		return string(raw), nil
	}

	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", fmt.Errorf("не удалось прочитать пароль: %w", err)
	}
	return strings.TrimSpace(line), nil
}
