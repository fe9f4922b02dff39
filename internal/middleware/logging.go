package middleware

import (
	"net/http"
	"time"

	"authntik/internal/logger"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// RequestLogger пишет строку на каждый завершенный запрос. Ожидает, что
// chi middleware.RequestID уже выставил идентификатор запроса.
func RequestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	log = logger.WithComponent(log, "http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			start := time.Now()
			wrapped := chimiddleware.NewWrapResponseWriter(writer, request.ProtoMajor)

			next.ServeHTTP(wrapped, request)

			status := wrapped.Status()
			if status == 0 {
				status = http.StatusOK
			}

			event := log.Info()
			if status >= http.StatusInternalServerError {
				event = log.Error()
			}
			event.
				Str(logger.FieldRequestID, chimiddleware.GetReqID(request.Context())).
				Str("method", request.Method).
				Str("path", request.URL.Path).
				Int("status", status).
				Int("bytes", wrapped.BytesWritten()).
				Dur("latency", time.Since(start)).
				Msg("request completed")
		})
	}
}
