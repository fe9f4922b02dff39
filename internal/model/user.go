package model

import "time"

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	FullName     string    `db:"full_name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// UserSummary проекция пользователя без пароля и дат
// swagger:model
type UserSummary struct {
	ID       string `json:"id" example:"123e4567-e89b-12d3-a456-426614174000"`
	Email    string `json:"email" example:"user@example.com"`
	FullName string `json:"fullName" example:"John Doe"`
}

// UserProfile профиль пользователя без пароля
// swagger:model
type UserProfile struct {
	ID        string    `json:"id" example:"123e4567-e89b-12d3-a456-426614174000"`
	Email     string    `json:"email" example:"user@example.com"`
	FullName  string    `json:"fullName" example:"John Doe"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (user *User) Summary() UserSummary {
	return UserSummary{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}
}

func (user *User) Profile() UserProfile {
	return UserProfile{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
