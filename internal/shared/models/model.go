// Package models содержит общие модели данных, используемые сервером
// и клиентами (web-приложения, CLI).
//
// Модели описывают wire-контракт API: JSON-теги фиксируют имена полей,
// которые видят браузерные приложения.
package models

// User — запись пользователя.
//
// Набор пользователей статический (seed из двух записей) и никогда
// не изменяется во время работы сервера.
//
// Поля:
//   - ID: уникальный идентификатор (UUID в виде строки)
//   - Username: логин пользователя
//   - Password: пароль В ОТКРЫТОМ ВИДЕ. Сравнивается посимвольно при логине.
//     Это осознанная слабость демо-системы, воспроизводится как есть.
//   - Email: email, по которому выполняется вход
//   - Role: роль (admin|user)
//   - Name, Surname: отображаемые имя и фамилия
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	ID       string `json:"id"`
}

// Todo — запись списка дел.
//
// Все записи лежат в одной общей коллекции; единственная граница
// доступа — фильтрация по UserID. Ссылочная целостность UserID -> User
// не проверяется.
type Todo struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TokenPayload — расшифрованное содержимое сессионного токена,
// как его возвращает GET /verify.
//
// Вся "сессия" живёт внутри токена: сервер не хранит состояния.
// Iat/Exp — unix-время выпуска и истечения (exp = iat + 1 час).
type TokenPayload struct {
	User User  `json:"user"`
	Iat  int64 `json:"iat"`
	Exp  int64 `json:"exp"`
}

// VerifyResponse — ответ эндпоинта GET /verify.
//
// При успехе Authenticated=true и User содержит полезную нагрузку токена.
// При любой ошибке проверки Authenticated=false; поле Error заполняется,
// только если cookie присутствовала, но токен не прошёл проверку.
type VerifyResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *TokenPayload `json:"user,omitempty"`
	Error         string        `json:"error,omitempty"`
}

// LoginRequest — тело запроса POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TodoRequest — тело запросов POST /todos и PUT /todos/{id}.
type TodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MessageResponse — ответ вида {"message": "..."} (логин, логаут, удаление).
type MessageResponse struct {
	Message string `json:"message"`
}

// TodoResponse — ответ создания/обновления todo: сообщение + сама запись.
type TodoResponse struct {
	Message string `json:"message"`
	Data    Todo   `json:"data"`
}
