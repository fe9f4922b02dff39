package guard

import (
	"context"
	"errors"
	"net/http"

	"authntik/internal/apperror"
	"authntik/internal/logger"
	"authntik/internal/model"
	"authntik/internal/security"
	"authntik/internal/service"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type contextKey struct{}

var userKey = contextKey{}

// Authenticate выполняет стратегию до обработчика. Любая ошибка
// аутентификации отдается клиенту как 401 с одинаковым телом.
func Authenticate(strategy Strategy, log zerolog.Logger) func(http.Handler) http.Handler {
	log = logger.WithComponent(log, "guard")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			user, err := strategy(request)
			if err != nil {
				event := log.Warn()
				if !IsAuthError(err) {
					event = log.Error()
				}
				event.Err(err).
					Str(logger.FieldRequestID, middleware.GetReqID(request.Context())).
					Str("path", request.URL.Path).
					Msg("аутентификация не пройдена")

				if IsAuthError(err) {
					apperror.Write(writer, apperror.Unauthorized(err))
				} else {
					apperror.Write(writer, apperror.Internal(err))
				}
				return
			}

			next.ServeHTTP(writer, request.WithContext(WithUser(request.Context(), user)))
		})
	}
}

func IsAuthError(err error) bool {
	return errors.Is(err, service.ErrInvalidCredentials) ||
		errors.Is(err, service.ErrRefreshTokenMissing) ||
		errors.Is(err, service.ErrUserNotFound) ||
		errors.Is(err, security.ErrTokenExpired) ||
		errors.Is(err, security.ErrTokenInvalid) ||
		errors.Is(err, security.ErrTokenMalformed)
}

func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok && user != nil
}
