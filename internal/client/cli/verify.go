package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkovalev/go-sso-todo/internal/client/api"
)

// NewVerifyCmd создаёт команду проверки сессии.
//
// Команда отправляет сохранённый токен на GET /verify и печатает
// результат: для действующей сессии — данные пользователя из полезной
// нагрузки токена, иначе — причину отказа.
func NewVerifyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Проверить сессию на сервере",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(app.ServerURL)

			token := ""
			if app.Creds != nil {
				token = app.Creds.Token
			}

			res, err := client.Verify(token)
			if err != nil {
				return fmt.Errorf("проверка сессии не выполнена: %w", err)
			}

			if !res.Authenticated {
				if res.Error != "" {
					cmd.Printf("Сессия недействительна: %s\n", res.Error)
				} else {
					cmd.Println("Сессия недействительна")
				}
				return nil
			}

			cmd.Println("Сессия действительна")
			if res.User != nil {
				u := res.User.User
				cmd.Printf("Пользователь: %s %s <%s>, роль %s, id %s\n",
					u.Name, u.Surname, u.Email, u.Role, u.ID)
			}
			return nil
		},
	}
}
