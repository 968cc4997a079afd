package webapp

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	clientapi "github.com/dkovalev/go-sso-todo/internal/client/api"
	"github.com/dkovalev/go-sso-todo/internal/shared/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

// App представляет одно web-приложение (вариант "main" или "external").
//
// Для типизированных вызовов auth API переиспользуется клиент из
// internal/client/api: токен браузерной cookie передаётся в него явно.
// Логин и логаут проксируются "сырыми" HTTP-запросами, потому что
// приложению нужно ретранслировать заголовки Set-Cookie ответа
// обратно браузеру.
type App struct {
	cfg  Config
	log  *logger.HTTPLogger
	api  *clientapi.Client
	http *http.Client
	tmpl *template.Template
}

// NewApp создаёт приложение: парсит шаблоны и настраивает клиенты API.
func NewApp(cfg Config, log *logger.HTTPLogger) (*App, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("не удалось разобрать шаблоны: %w", err)
	}

	return &App{
		cfg:  cfg,
		log:  log,
		api:  clientapi.NewClient(cfg.APIURL),
		http: &http.Client{Timeout: 10 * time.Second},
		tmpl: tmpl,
	}, nil
}

// Router собирает маршруты приложения.
//
// Форма логина и её обработчик регистрируются только в варианте "main":
// вариант "external" вместо формы показывает ссылку на чужой логин.
func (app *App) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/", app.Index)
	r.Post("/logout", app.Logout)

	r.Get("/todos", app.TodosPage)
	r.Post("/todos/add", app.AddTodo)
	r.Post("/todos/{id}/update", app.UpdateTodo)
	r.Post("/todos/{id}/delete", app.DeleteTodo)

	if app.cfg.Variant == VariantMain {
		r.Post("/login", app.Login)
	}

	return r
}

// title возвращает человекочитаемое имя приложения для заголовков страниц.
func (app *App) title() string {
	if app.cfg.Variant == VariantMain {
		return "Главное приложение"
	}
	return "Внешнее приложение"
}

// render выводит шаблон; ошибка рендеринга логируется и превращается в 500.
func (app *App) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := app.tmpl.ExecuteTemplate(w, name, data); err != nil {
		app.log.Sugar().Errorw("ошибка рендеринга шаблона", "template", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
