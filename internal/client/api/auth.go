// Методы клиента для эндпоинтов аутентификации: логин, проверка
// сессии и логаут.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkovalev/go-sso-todo/internal/shared/models"
)

// errNoSessionCookie — успешный логин обязан вернуть Set-Cookie с токеном.
var errNoSessionCookie = errors.New("login response has no session cookie")

// Login выполняет вход пользователя.
//
// Метод отправляет POST запрос на /login и возвращает значение cookie
// sso_token из заголовка Set-Cookie успешного ответа — это и есть
// сессионный токен.
//
// В случае ошибки (400 от сервера, сеть) возвращает непустую ошибку.
func (c *Client) Login(email, password string) (string, error) {
	res, err := c.do(http.MethodPost, "/login",
		models.LoginRequest{Email: email, Password: password}, nil, "")
	if err != nil {
		return "", err
	}

	for _, ck := range res.Cookies() {
		if ck.Name == SessionCookieName {
			return ck.Value, nil
		}
	}
	// 200 без cookie сервер не отдаёт; считаем это ошибкой контракта
	return "", errNoSessionCookie
}

// Verify проверяет сессионный токен.
//
// Метод отправляет GET запрос на /verify. Сервер отвечает осмысленным
// JSON и на 200, и на 401 ({"authenticated":false}), поэтому
// отрицательный ответ НЕ считается ошибкой: ошибка возвращается только
// при проблемах транспорта или нечитаемом теле. Вызывающие (web-приложения,
// CLI) трактуют ошибку так же, как authenticated=false.
func (c *Client) Verify(token string) (models.VerifyResponse, error) {
	r, err := http.NewRequest(http.MethodGet, c.baseURL+"/verify", nil)
	if err != nil {
		return models.VerifyResponse{}, err
	}
	r.Header.Set("Accept", "application/json")
	if token != "" {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	}

	res, err := c.http.Do(r)
	if err != nil {
		return models.VerifyResponse{}, err
	}
	defer res.Body.Close()

	var resp models.VerifyResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return models.VerifyResponse{}, err
	}
	return resp, nil
}

// Logout завершает сессию на стороне клиента.
//
// Сервер лишь стирает cookie; сам токен остаётся валидным до истечения.
func (c *Client) Logout(token string) (models.MessageResponse, error) {
	var resp models.MessageResponse
	err := c.PostJSON("/logout", nil, &resp, token)
	return resp, err
}
