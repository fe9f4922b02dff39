package model

import "time"

// JwtPayload полезная нагрузка access и refresh токенов. Оба класса токенов
// имеют одинаковую форму и различаются только секретом, которым подписаны.
type JwtPayload struct {
	Sub       string    `json:"sub"`
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

// AuthTokens содержит пару access и refresh токенов
// swagger:model
type AuthTokens struct {
	// Access токен (JWT)
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"accessToken"`

	// Refresh токен (JWT, для получения новой пары)
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	RefreshToken string `json:"refreshToken"`
}

// AuthResponse ответ на успешный логин
// swagger:model
type AuthResponse struct {
	User   UserSummary `json:"user"`
	Tokens AuthTokens  `json:"tokens"`
}

// CookieOptions параметры cookie сессии. MaxAge хранится как длительность,
// в заголовок Set-Cookie уходит в секундах.
type CookieOptions struct {
	HTTPOnly bool
	Secure   bool
	SameSite string
	MaxAge   time.Duration
}

// Имена cookie сессии. SessionTokenCookie читается NextAuth и содержит access токен.
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
	SessionTokenCookie = "next-auth.session-token"
)
