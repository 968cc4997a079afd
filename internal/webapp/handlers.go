package webapp

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	clientapi "github.com/dkovalev/go-sso-todo/internal/client/api"
	"github.com/dkovalev/go-sso-todo/internal/shared/models"
)

// loginPageData — данные шаблона login.html.
type loginPageData struct {
	AppTitle      string
	Flash         string
	ShowLoginForm bool
	ReturnURL     string
	MainLoginURL  string
}

// todosPageData — данные шаблона todos.html.
type todosPageData struct {
	AppTitle string
	Flash    string
	User     models.User
	Todos    []models.Todo
}

// sessionToken извлекает сессионный токен из браузерной cookie.
// Отсутствие cookie — обычное состояние, возвращается пустая строка.
func sessionToken(r *http.Request) string {
	c, err := r.Cookie(clientapi.SessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// verify проверяет сессию на auth API.
//
// Любой сбой (сетевая ошибка, недоступный API, невалидный токен)
// схлопывается в неаутентифицированное состояние: страница рендерится
// как для анонимного пользователя, состояние не меняется.
func (app *App) verify(r *http.Request) (models.User, bool) {
	token := sessionToken(r)
	if token == "" {
		return models.User{}, false
	}

	res, err := app.api.Verify(token)
	if err != nil {
		app.log.Sugar().Warnw("проверка сессии не удалась", "error", err)
		return models.User{}, false
	}
	if !res.Authenticated || res.User == nil {
		return models.User{}, false
	}
	return res.User.User, true
}

// mainLoginURL строит ссылку на форму логина "main"-приложения
// с возвратом на страницу дел текущего приложения.
func (app *App) mainLoginURL(r *http.Request) string {
	returnURL := "http://" + r.Host + "/todos"
	return app.cfg.MainAppURL + "/?returnUrl=" + url.QueryEscape(returnURL)
}

// Index — главная страница.
//
// Аутентифицированный пользователь перенаправляется на страницу дел
// (или на returnUrl, если пришёл по SSO-ссылке из другого приложения).
// Анонимный видит форму логина ("main") либо ссылку на чужой логин
// ("external").
func (app *App) Index(w http.ResponseWriter, r *http.Request) {
	returnURL := r.URL.Query().Get("returnUrl")

	if _, ok := app.verify(r); ok {
		target := "/todos"
		if returnURL != "" {
			target = returnURL
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	app.render(w, "login.html", loginPageData{
		AppTitle:      app.title(),
		Flash:         r.URL.Query().Get("flash"),
		ShowLoginForm: app.cfg.Variant == VariantMain,
		ReturnURL:     returnURL,
		MainLoginURL:  app.mainLoginURL(r),
	})
}

// Login проксирует форму логина на POST /login auth API.
//
// Заголовки Set-Cookie ответа ретранслируются браузеру как есть: именно
// auth API определяет имя, срок жизни и атрибуты сессионной cookie.
// При ошибке пользователь возвращается на форму с flash-сообщением,
// returnUrl при этом сохраняется.
func (app *App) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	returnURL := r.PostFormValue("returnUrl")

	body, err := json.Marshal(models.LoginRequest{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	res, err := app.http.Post(app.cfg.APIURL+"/login", "application/json", bytes.NewReader(body))
	if err != nil {
		app.redirectWithFlash(w, r, app.loginURL(returnURL), "auth API недоступен")
		return
	}
	defer res.Body.Close()

	relaySetCookie(w, res)

	if res.StatusCode != http.StatusOK {
		app.redirectWithFlash(w, r, app.loginURL(returnURL), apiErrorText(res.Body))
		return
	}

	target := "/todos"
	if returnURL != "" {
		target = returnURL
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Logout проксирует выход на POST /logout auth API и ретранслирует
// Set-Cookie с истёкшей cookie, после чего возвращает на главную.
func (app *App) Logout(w http.ResponseWriter, r *http.Request) {
	req, err := http.NewRequest(http.MethodPost, app.cfg.APIURL+"/logout", nil)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if token := sessionToken(r); token != "" {
		req.AddCookie(&http.Cookie{Name: clientapi.SessionCookieName, Value: token})
	}

	res, err := app.http.Do(req)
	if err != nil {
		app.redirectWithFlash(w, r, "/todos", "auth API недоступен")
		return
	}
	defer res.Body.Close()

	relaySetCookie(w, res)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// TodosPage — страница списка дел текущего пользователя.
func (app *App) TodosPage(w http.ResponseWriter, r *http.Request) {
	user, ok := app.verify(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := todosPageData{
		AppTitle: app.title(),
		Flash:    r.URL.Query().Get("flash"),
		User:     user,
	}

	todos, err := app.api.TodosForUser(user.ID, sessionToken(r))
	if err != nil {
		data.Flash = "не удалось получить список дел: " + err.Error()
	} else {
		data.Todos = todos
	}

	app.render(w, "todos.html", data)
}

// AddTodo проксирует добавление дела.
func (app *App) AddTodo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	res, err := app.api.AddTodo(r.PostFormValue("title"), r.PostFormValue("description"), sessionToken(r))
	if err != nil {
		app.redirectWithFlash(w, r, "/todos", err.Error())
		return
	}
	app.redirectWithFlash(w, r, "/todos", res.Message)
}

// UpdateTodo проксирует изменение дела.
func (app *App) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	id := chi.URLParam(r, "id")

	res, err := app.api.UpdateTodo(id, r.PostFormValue("title"), r.PostFormValue("description"), sessionToken(r))
	if err != nil {
		app.redirectWithFlash(w, r, "/todos", err.Error())
		return
	}
	app.redirectWithFlash(w, r, "/todos", res.Message)
}

// DeleteTodo проксирует удаление дела.
func (app *App) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := app.api.DeleteTodo(id, sessionToken(r))
	if err != nil {
		app.redirectWithFlash(w, r, "/todos", err.Error())
		return
	}
	app.redirectWithFlash(w, r, "/todos", res.Message)
}

// loginURL строит путь на форму логина с сохранением returnUrl.
func (app *App) loginURL(returnURL string) string {
	if returnURL == "" {
		return "/"
	}
	return "/?returnUrl=" + url.QueryEscape(returnURL)
}

// redirectWithFlash перенаправляет на target, добавляя flash-сообщение
// в параметры запроса.
func (app *App) redirectWithFlash(w http.ResponseWriter, r *http.Request, target, flash string) {
	u, err := url.Parse(target)
	if err != nil {
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}
	q := u.Query()
	q.Set("flash", flash)
	u.RawQuery = q.Encode()
	http.Redirect(w, r, u.String(), http.StatusSeeOther)
}

// relaySetCookie копирует заголовки Set-Cookie ответа auth API в ответ браузеру.
func relaySetCookie(w http.ResponseWriter, res *http.Response) {
	for _, c := range res.Cookies() {
		http.SetCookie(w, c)
	}
}

// apiErrorText достаёт текст ошибки из JSON-тела ответа auth API.
func apiErrorText(body io.Reader) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return "неизвестная ошибка"
	}
	if payload.Error != "" {
		return payload.Error
	}
	if payload.Message != "" {
		return payload.Message
	}
	return "неожиданный ответ auth API"
}
