package handler

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"authntik/internal/apperror"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once

	fullNamePattern = regexp.MustCompile(`^[a-zA-Z\x{0627}-\x{06CC} -]+$`)
)

const passwordSpecials = "@$!%*#?&"

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
		_ = validate.RegisterValidation("fullname", validateFullName)
		_ = validate.RegisterValidation("password_strength", validatePasswordStrength)
	})
	return validate
}

func validateFullName(field validator.FieldLevel) bool {
	return fullNamePattern.MatchString(field.Field().String())
}

// validatePasswordStrength требует букву, цифру и спецсимвол из passwordSpecials.
// Первый символ должен быть одним из разрешенных.
func validatePasswordStrength(field validator.FieldLevel) bool {
	password := field.Field().String()
	if password == "" || !isPasswordRune(rune(password[0])) {
		return false
	}

	var letter, digit, special bool
	for _, r := range password {
		switch {
		case isASCIILetter(r):
			letter = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return letter && digit && special
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isPasswordRune(r rune) bool {
	return isASCIILetter(r) || (r >= '0' && r <= '9') || strings.ContainsRune(passwordSpecials, r)
}

// validateRequest проверяет DTO и возвращает AppError с полями в Details.
func validateRequest(request any) error {
	err := getValidator().Struct(request)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperror.InvalidInput("Validation failed")
	}

	fields := make(map[string]string, len(validationErrors))
	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		message := validationMessage(fieldErr)
		fields[fieldErr.Field()] = message
		messages = append(messages, message)
	}

	return apperror.InvalidInput(strings.Join(messages, "; ")).WithDetail("fields", fields)
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Field() + "." + fieldErr.Tag() {
	case "email.required":
		return "Email is required"
	case "email.email":
		return "Please provide a valid email address"
	case "fullName.required":
		return "Full name is required"
	case "fullName.min":
		return "Full name must be at least 3 characters long"
	case "fullName.max":
		return "Full name must not exceed 100 characters"
	case "fullName.fullname":
		return "Full name must contain only letters and spaces"
	case "password.required":
		return "Password is required"
	case "password.min":
		return "Password must be at least 8 characters long"
	case "password.password_strength":
		return "Password must contain at least one letter, one number, and one special character (@$!%*#?&)"
	default:
		return fieldErr.Field() + " is invalid"
	}
}
