package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkovalev/go-sso-todo/internal/client/api"
	"github.com/dkovalev/go-sso-todo/internal/shared/models"
)

// NewTodoCmd создаёт группу команд для работы со списком дел.
func NewTodoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Работа со списком дел",
	}

	cmd.AddCommand(newTodoListCmd(app))
	cmd.AddCommand(newTodoAddCmd(app))
	cmd.AddCommand(newTodoUpdateCmd(app))
	cmd.AddCommand(newTodoDeleteCmd(app))

	return cmd
}

// sessionToken возвращает сохранённый токен или пустую строку.
func sessionToken(app *App) string {
	if app.Creds == nil {
		return ""
	}
	return app.Creds.Token
}

// printTodos печатает список дел в человекочитаемом виде.
func printTodos(cmd *cobra.Command, todos []models.Todo) {
	if len(todos) == 0 {
		cmd.Println("Список дел пуст")
		return
	}
	for _, t := range todos {
		cmd.Printf("%s\t%s\t%s\t(владелец %s)\n", t.ID, t.Title, t.Description, t.UserID)
	}
}

// newTodoListCmd создаёт команду просмотра списка дел.
//
// Без флага --user печатается общий список (GET /todos, авторизация не
// требуется). С флагом --user выполняется GET /todos/{userId}: сервер
// требует действующую сессию, но выборку всё равно строит по id из
// токена, а не по значению из пути.
func newTodoListCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Показать список дел",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(app.ServerURL)

			var (
				todos []models.Todo
				err   error
			)
			if userID == "" {
				todos, err = client.Todos()
			} else {
				todos, err = client.TodosForUser(userID, sessionToken(app))
			}
			if err != nil {
				return fmt.Errorf("не удалось получить список дел: %w", err)
			}

			printTodos(cmd, todos)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "id пользователя (требует сессию)")

	return cmd
}

// newTodoAddCmd создаёт команду добавления дела.
func newTodoAddCmd(app *App) *cobra.Command {
	var (
		title       string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Добавить дело",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return fmt.Errorf("флаг --title обязателен")
			}

			client := api.NewClient(app.ServerURL)
			res, err := client.AddTodo(title, description, sessionToken(app))
			if err != nil {
				return fmt.Errorf("не удалось добавить дело: %w", err)
			}

			cmd.Printf("%s: %s\n", res.Message, res.Data.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "заголовок")
	cmd.Flags().StringVar(&description, "description", "", "описание")

	return cmd
}

// newTodoUpdateCmd создаёт команду изменения дела.
func newTodoUpdateCmd(app *App) *cobra.Command {
	var (
		title       string
		description string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Изменить дело",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(app.ServerURL)
			res, err := client.UpdateTodo(args[0], title, description, sessionToken(app))
			if err != nil {
				return fmt.Errorf("не удалось изменить дело: %w", err)
			}

			cmd.Println(res.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "новый заголовок")
	cmd.Flags().StringVar(&description, "description", "", "новое описание")

	return cmd
}

// newTodoDeleteCmd создаёт команду удаления дела.
func newTodoDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить дело",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(app.ServerURL)
			res, err := client.DeleteTodo(args[0], sessionToken(app))
			if err != nil {
				return fmt.Errorf("не удалось удалить дело: %w", err)
			}

			cmd.Println(res.Message)
			return nil
		},
	}
}
