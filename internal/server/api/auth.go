// HTTP-хендлеры логина, проверки сессии и логаута
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkovalev/go-sso-todo/internal/server/config"
	serr "github.com/dkovalev/go-sso-todo/internal/shared/errors"
	"github.com/dkovalev/go-sso-todo/internal/shared/models"
)

// Root — приветственный эндпоинт.
//
// @Summary      Welcome
// @Tags         misc
// @Produce      json
// @Success      200 {object} models.MessageResponse
// @Router       / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "Welcome to the API"})
}

// Login обрабатывает вход пользователя и выдачу сессионной cookie.
//
// Ответы:
//   - 200 OK: успешный вход, выставлена cookie sso_token;
//   - 400 Bad Request: неверный JSON, пустые поля или неверные учётные данные
//     (оба поля сравниваются с seed-пользователями посимвольно).
//
// Атрибуты cookie: MaxAge из конфига (3600с), SameSite=Strict;
// HttpOnly и Secure выставляются только в production-режиме.
//
// @Summary      Login
// @Description  Exact-match lookup against seeded users; sets signed session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body models.LoginRequest true "Login request"
// @Success      200 {object} models.MessageResponse
// @Failure      400 {object} ErrorResponse "Missing fields or invalid credentials"
// @Router       /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	_, token, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrInvalidCredentials):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidCredentials)
		default:
			h.Log.Logger.Sugar().Error("login failed")
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	http.SetCookie(w, h.sessionCookie(token, h.Cfg.Auth.Cookie.MaxAge))

	WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "Login successful"})
}

// Verify проверяет сессионную cookie и возвращает payload токена.
//
// Ответы:
//   - 200 OK: {"authenticated":true,"user":{...}};
//   - 401 Unauthorized: cookie нет — {"authenticated":false};
//     cookie есть, но токен битый или просроченный —
//     {"authenticated":false,"error":"Invalid token"}.
//
// Просроченный и битый токен наружу не различаются.
//
// @Summary      Verify session
// @Tags         auth
// @Produce      json
// @Success      200 {object} models.VerifyResponse
// @Failure      401 {object} models.VerifyResponse
// @Router       /verify [get]
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(h.Cfg.Auth.Cookie.Name)
	if err != nil || cookie.Value == "" {
		WriteJSON(w, http.StatusUnauthorized, models.VerifyResponse{Authenticated: false})
		return
	}

	payload, err := h.Svc.Auth.VerifyToken(cookie.Value)
	if err != nil {
		WriteJSON(w, http.StatusUnauthorized, models.VerifyResponse{
			Authenticated: false,
			Error:         serr.ErrTokenInvalid.Error(),
		})
		return
	}

	WriteJSON(w, http.StatusOK, models.VerifyResponse{
		Authenticated: true,
		User:          &payload,
	})
}

// Logout стирает сессионную cookie.
//
// Сервер не хранит состояния сессий, так что "выход" затрагивает только
// клиента: уже перехваченный токен продолжит проходить проверку до
// естественного истечения (1 час).
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200 {object} models.MessageResponse
// @Router       /logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))

	WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "Logout successful"})
}

// sessionCookie собирает cookie сессии с атрибутами из конфига.
// maxAge < 0 стирает cookie.
func (h *Handler) sessionCookie(token string, maxAge int) *http.Cookie {
	production := h.Cfg.Env == config.EnvProduction

	return &http.Cookie{
		Name:     h.Cfg.Auth.Cookie.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		SameSite: http.SameSiteStrictMode,
		HttpOnly: production,
		Secure:   production,
	}
}
