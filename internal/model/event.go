package model

import "time"

const AuthEventLoginSuccess = "login_success"

// AuthEvent тело webhook уведомления о событии аутентификации
// swagger:model
type AuthEvent struct {
	Event     string    `json:"event" example:"login_success"`
	UserID    string    `json:"userId" example:"123e4567-e89b-12d3-a456-426614174000"`
	Email     string    `json:"email" example:"user@example.com"`
	Timestamp time.Time `json:"timestamp"`
}
