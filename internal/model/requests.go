package model

// LoginRequest тело запроса POST /auth/login
// swagger:model
type LoginRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"Password@123!"`
}

// RegisterRequest тело запроса POST /users/register
// swagger:model
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email" example:"user@example.com"`
	FullName string `json:"fullName" validate:"required,min=3,max=100,fullname" example:"John Doe"`
	Password string `json:"password" validate:"required,min=8,password_strength" example:"Password@123!"`
}

// RefreshTokenRequest содержит refresh токен в json формате
// swagger:model
type RefreshTokenRequest struct {
	// Refresh токен
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	RefreshToken string `json:"refreshToken"`
}

// LogoutResponse содержит строку с сообщением
// swagger:model
type LogoutResponse struct {
	// Сообщение о результате операции
	// example: Logged out successfully
	Message string `json:"message"`
}

// VerifyResponse ответ GET /auth/verify
// swagger:model
type VerifyResponse struct {
	Valid bool        `json:"valid"`
	User  UserSummary `json:"user"`
}
