package handler

import (
	"context"
	"net/http"
	"time"

	"authntik/internal/apperror"
	"authntik/internal/guard"
	"authntik/internal/model"
	"authntik/internal/service"
)

const requestTimeout = 3 * time.Second

type AuthenticationHandler struct {
	*service.AuthenticationService
}

func NewAuthenticationHandler(authenticationService *service.AuthenticationService) *AuthenticationHandler {
	return &AuthenticationHandler{authenticationService}
}

// Login выдает пару токенов пользователю, прошедшему проверку пароля
// @Summary Вход по email и паролю
// @Description Проверяет учетные данные, выдает access/refresh токены и выставляет cookie access_token, refresh_token и next-auth.session-token. Пример запроса: POST /v1/auth/login с телом {"email": "user@example.com", "password": "Password@123!"}
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Учетные данные"
// @Success 200 {object} model.AuthResponse "успешный вход"
// @Failure 401 {object} apperror.AppError "неверный email или пароль"
// @Router /auth/login [post]
func (handler *AuthenticationHandler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	user, ok := guard.UserFromContext(ctx)
	if !ok {
		apperror.Write(writer, apperror.Unauthorized(nil))
		return
	}

	response, err := handler.AuthenticationService.Login(ctx, user)
	if err != nil {
		apperror.Write(writer, toAppError(err))
		return
	}

	SetAuthCookies(writer, response.Tokens, handler.GetCookieOptions(), handler.GetRefreshCookieOptions())
	writeJSON(writer, http.StatusOK, response)
}

// Refresh выдает новую пару токенов по refresh токену
// @Summary Обновление токенов
// @Description Refresh токен берется из cookie refresh_token, иначе из поля refreshToken в теле. Выдается новая пара токенов, cookie перезаписываются. Пример запроса: POST /v1/auth/refresh с телом {"refreshToken": "<refresh_token>"}
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body model.RefreshTokenRequest false "Refresh токен, если нет cookie"
// @Success 200 {object} model.AuthTokens "новая пара токенов"
// @Failure 401 {object} apperror.AppError "токен отсутствует, невалиден или пользователь не найден"
// @Router /auth/refresh [post]
func (handler *AuthenticationHandler) Refresh(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	user, ok := guard.UserFromContext(ctx)
	if !ok {
		apperror.Write(writer, apperror.Unauthorized(nil))
		return
	}

	tokens, err := handler.AuthenticationService.RefreshTokens(ctx, user)
	if err != nil {
		apperror.Write(writer, toAppError(err))
		return
	}

	SetAuthCookies(writer, *tokens, handler.GetCookieOptions(), handler.GetRefreshCookieOptions())
	writeJSON(writer, http.StatusOK, tokens)
}

// Logout godoc
// @Summary Выход из аккаунта
// @Description Удаляет cookie сессии. Серверного состояния нет, выданные токены действуют до истечения срока. Пример запроса: POST /v1/auth/logout с заголовком Authorization: Bearer <access_token>
// @Tags Authentication
// @Produce json
// @Param Authorization header string false "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} model.LogoutResponse "Успешный выход" example:`{"message": "Logged out successfully"}`
// @Failure 401 {object} apperror.AppError "не авторизован"
// @Security ApiKeyAuth
// @Router /auth/logout [post]
func (handler *AuthenticationHandler) Logout(writer http.ResponseWriter, request *http.Request) {
	ClearAuthCookies(writer, handler.GetCookieOptions())
	writeJSON(writer, http.StatusOK, handler.AuthenticationService.Logout())
}

// Profile godoc
// @Summary Профиль текущего пользователя
// @Tags Authentication
// @Produce json
// @Success 200 {object} model.UserProfile
// @Failure 401 {object} apperror.AppError "не авторизован"
// @Security ApiKeyAuth
// @Router /auth/profile [get]
func (handler *AuthenticationHandler) Profile(writer http.ResponseWriter, request *http.Request) {
	user, ok := guard.UserFromContext(request.Context())
	if !ok {
		apperror.Write(writer, apperror.Unauthorized(nil))
		return
	}

	writeJSON(writer, http.StatusOK, user.Profile())
}

// Verify godoc
// @Summary Проверка access токена
// @Description Используется фронтендом для проверки сессии. Пример запроса: GET /v1/auth/verify с заголовком Authorization: Bearer <access_token>
// @Tags Authentication
// @Produce json
// @Success 200 {object} model.VerifyResponse "токен валиден" example:`{"valid": true, "user": {"id": "...", "email": "user@example.com", "fullName": "John Doe"}}`
// @Failure 401 {object} apperror.AppError "не авторизован"
// @Security ApiKeyAuth
// @Router /auth/verify [get]
func (handler *AuthenticationHandler) Verify(writer http.ResponseWriter, request *http.Request) {
	user, ok := guard.UserFromContext(request.Context())
	if !ok {
		apperror.Write(writer, apperror.Unauthorized(nil))
		return
	}

	writeJSON(writer, http.StatusOK, model.VerifyResponse{Valid: true, User: user.Summary()})
}
