package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkovalev/go-sso-todo/internal/client/api"
	"github.com/dkovalev/go-sso-todo/internal/client/config"
)

// NewLogoutCmd создаёт команду выхода из системы.
//
// Команда вызывает POST /logout и стирает локально сохранённый токен.
// Сервер не ведёт реестра выданных токенов, поэтому выход — операция
// на стороне клиента: ранее скопированный токен остаётся рабочим до
// истечения срока его действия.
func NewLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Выйти и удалить локальный токен",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(app.ServerURL)

			token := ""
			if app.Creds != nil {
				token = app.Creds.Token
			}

			if _, err := client.Logout(token); err != nil {
				return fmt.Errorf("логаут не выполнен: %w", err)
			}

			if err := config.Save(app.CredsPath, &config.Credentials{}); err != nil {
				return fmt.Errorf("не удалось очистить токен: %w", err)
			}

			cmd.Println("Выход выполнен, локальный токен удалён")
			return nil
		},
	}
}
