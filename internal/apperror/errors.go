// Package apperror переводит доменные ошибки в HTTP ответы единого формата.
package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeUnauthorized  Code = "UNAUTHORIZED"
	CodeInvalidInput  Code = "INVALID_INPUT"
	CodeNotFound      Code = "NOT_FOUND"
	CodeAlreadyExists Code = "ALREADY_EXISTS"
	CodeInternal      Code = "INTERNAL_ERROR"
)

type AppError struct {
	Code       Code           `json:"code"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	HTTPStatus int            `json:"-"`
	Cause      error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Cause }

func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Unauthorized всегда возвращает одно и то же сообщение, чтобы клиент не мог
// отличить неверный пароль от несуществующего пользователя или протухшего токена.
func Unauthorized(cause error) *AppError {
	return &AppError{
		Code:       CodeUnauthorized,
		Message:    "Unauthorized",
		HTTPStatus: http.StatusUnauthorized,
		Cause:      cause,
	}
}

func InvalidInput(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

func AlreadyExists(message string) *AppError {
	return &AppError{
		Code:       CodeAlreadyExists,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

func Internal(cause error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// As возвращает AppError из цепочки ошибок либо оборачивает err в Internal.
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

type errorResponse struct {
	Error *AppError `json:"error"`
}

func Write(writer http.ResponseWriter, err error) {
	appErr := As(err)

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(appErr.HTTPStatus)
	json.NewEncoder(writer).Encode(errorResponse{Error: appErr})
}
