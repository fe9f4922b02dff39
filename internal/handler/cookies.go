package handler

import (
	"net/http"
	"strings"

	"authntik/internal/model"
)

// SetAuthCookies выставляет три cookie сессии: access, refresh и
// next-auth.session-token, который содержит access токен.
func SetAuthCookies(writer http.ResponseWriter, tokens model.AuthTokens, accessOptions model.CookieOptions, refreshOptions model.CookieOptions) {
	http.SetCookie(writer, newCookie(model.AccessTokenCookie, tokens.AccessToken, accessOptions))
	http.SetCookie(writer, newCookie(model.RefreshTokenCookie, tokens.RefreshToken, refreshOptions))
	http.SetCookie(writer, newCookie(model.SessionTokenCookie, tokens.AccessToken, accessOptions))
}

// ClearAuthCookies удаляет все три cookie, даже если клиент их не присылал.
func ClearAuthCookies(writer http.ResponseWriter, options model.CookieOptions) {
	for _, name := range []string{model.AccessTokenCookie, model.RefreshTokenCookie, model.SessionTokenCookie} {
		cookie := newCookie(name, "", options)
		cookie.MaxAge = -1
		http.SetCookie(writer, cookie)
	}
}

func newCookie(name string, value string, options model.CookieOptions) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(options.MaxAge.Seconds()),
		HttpOnly: options.HTTPOnly,
		Secure:   options.Secure,
		SameSite: sameSiteMode(options.SameSite),
	}
}

func sameSiteMode(value string) http.SameSite {
	switch strings.ToLower(value) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
