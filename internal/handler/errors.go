package handler

import (
	"errors"

	"authntik/internal/apperror"
	"authntik/internal/guard"
	"authntik/internal/service"
)

// toAppError сопоставляет доменные ошибки с HTTP ответами.
func toAppError(err error) error {
	switch {
	case errors.Is(err, service.ErrUserAlreadyExists):
		return apperror.AlreadyExists("User with this email already exists")
	case errors.Is(err, service.ErrUserNotFound):
		return apperror.NotFound("User")
	case guard.IsAuthError(err):
		return apperror.Unauthorized(err)
	default:
		return apperror.As(err)
	}
}
