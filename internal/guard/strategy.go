// Package guard содержит стратегии аутентификации запроса и middleware,
// которое кладет найденного пользователя в контекст.
package guard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"authntik/internal/model"
	"authntik/internal/service"
)

type Authenticator interface {
	ValidateCredentials(ctx context.Context, email string, password string) (*model.User, error)
	VerifyAccessToken(token string) (*model.JwtPayload, error)
	VerifyRefreshToken(token string) (*model.JwtPayload, error)
	FindUser(ctx context.Context, id string) (*model.User, error)
}

// Strategy извлекает и проверяет учетные данные запроса.
type Strategy func(request *http.Request) (*model.User, error)

// LocalCredentialCheck проверяет email и пароль из тела запроса.
func LocalCredentialCheck(authenticator Authenticator) Strategy {
	return func(request *http.Request) (*model.User, error) {
		var credentials model.LoginRequest
		if err := json.NewDecoder(request.Body).Decode(&credentials); err != nil {
			return nil, fmt.Errorf("%w: неверный json", service.ErrInvalidCredentials)
		}
		if credentials.Email == "" || credentials.Password == "" {
			return nil, fmt.Errorf("%w: пустой email или пароль", service.ErrInvalidCredentials)
		}

		user, err := authenticator.ValidateCredentials(request.Context(), credentials.Email, credentials.Password)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, service.ErrInvalidCredentials
		}
		return user, nil
	}
}

// BearerVerify проверяет access токен из заголовка Authorization или cookie.
func BearerVerify(authenticator Authenticator) Strategy {
	return func(request *http.Request) (*model.User, error) {
		token := ExtractAccessToken(request)
		if token == "" {
			return nil, fmt.Errorf("%w: access токен не передан", service.ErrInvalidCredentials)
		}

		payload, err := authenticator.VerifyAccessToken(token)
		if err != nil {
			return nil, err
		}
		return authenticator.FindUser(request.Context(), payload.Sub)
	}
}

// RefreshVerify проверяет refresh токен из cookie или тела запроса.
func RefreshVerify(authenticator Authenticator) Strategy {
	return func(request *http.Request) (*model.User, error) {
		token := ExtractRefreshToken(request)
		if token == "" {
			return nil, service.ErrRefreshTokenMissing
		}

		payload, err := authenticator.VerifyRefreshToken(token)
		if err != nil {
			return nil, err
		}
		return authenticator.FindUser(request.Context(), payload.Sub)
	}
}

// ExtractAccessToken: заголовок Authorization имеет приоритет над cookie.
func ExtractAccessToken(request *http.Request) string {
	// схема в заголовке Authorization регистронезависима
	scheme, token, found := strings.Cut(strings.TrimSpace(request.Header.Get("Authorization")), " ")
	if found && strings.EqualFold(scheme, "Bearer") {
		if token = strings.TrimSpace(token); token != "" {
			return token
		}
	}

	if cookie, err := request.Cookie(model.AccessTokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// ExtractRefreshToken: cookie имеет приоритет над полем refreshToken в теле.
func ExtractRefreshToken(request *http.Request) string {
	if cookie, err := request.Cookie(model.RefreshTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	if request.Body == nil {
		return ""
	}
	var body model.RefreshTokenRequest
	if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
		return ""
	}
	return body.RefreshToken
}
