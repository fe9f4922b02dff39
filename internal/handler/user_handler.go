package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"authntik/internal/apperror"
	"authntik/internal/guard"
	"authntik/internal/model"
	"authntik/internal/service"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	*service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService}
}

// Register godoc
// @Summary Регистрация пользователя
// @Description Пример запроса: POST /v1/users/register с телом {"email": "user@example.com", "fullName": "John Doe", "password": "Password@123!"}
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Данные пользователя"
// @Success 201 {object} model.UserProfile "пользователь создан"
// @Failure 400 {object} apperror.AppError "ошибка валидации"
// @Failure 409 {object} apperror.AppError "email уже занят"
// @Router /users/register [post]
func (handler *UserHandler) Register(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	decoder := json.NewDecoder(request.Body)
	decoder.DisallowUnknownFields()

	var registerRequest model.RegisterRequest
	if err := decoder.Decode(&registerRequest); err != nil {
		apperror.Write(writer, apperror.InvalidInput("Invalid JSON body"))
		return
	}
	if err := validateRequest(registerRequest); err != nil {
		apperror.Write(writer, err)
		return
	}

	profile, err := handler.UserService.Register(ctx, registerRequest)
	if err != nil {
		apperror.Write(writer, toAppError(err))
		return
	}

	writeJSON(writer, http.StatusCreated, profile)
}

// ProfileByID godoc
// @Summary Профиль пользователя по id
// @Tags Users
// @Produce json
// @Param id path string true "UUID пользователя"
// @Success 200 {object} model.UserProfile
// @Failure 404 {object} apperror.AppError "пользователь не найден"
// @Router /users/profile/{id} [get]
func (handler *UserHandler) ProfileByID(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), requestTimeout)
	defer cancel()

	profile, err := handler.UserService.GetProfile(ctx, chi.URLParam(request, "id"))
	if err != nil {
		apperror.Write(writer, toAppError(err))
		return
	}

	writeJSON(writer, http.StatusOK, profile)
}

// Me godoc
// @Summary Профиль текущего пользователя
// @Tags Users
// @Produce json
// @Success 200 {object} model.UserProfile
// @Failure 401 {object} apperror.AppError "не авторизован"
// @Security ApiKeyAuth
// @Router /users/me [get]
func (handler *UserHandler) Me(writer http.ResponseWriter, request *http.Request) {
	user, ok := guard.UserFromContext(request.Context())
	if !ok {
		apperror.Write(writer, apperror.Unauthorized(nil))
		return
	}

	writeJSON(writer, http.StatusOK, user.Profile())
}
