package logger

import (
	"io"
	"os"
	"strings"

	"authntik/config"

	"github.com/rs/zerolog"
)

const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldUserID    = "user_id"
	FieldEmail     = "email"
	FieldAction    = "action"
	FieldReason    = "reason"
)

// New создает zerolog логгер по конфигурации: "json" пишет JSON строки,
// "console" (по умолчанию) человекочитаемый вывод.
func New(cfg config.LoggerConfig) zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

func NewWithWriter(cfg config.LoggerConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var writer io.Writer = out
	if strings.ToLower(cfg.Format) != "json" {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func WithComponent(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str(FieldComponent, name).Logger()
}

// Auth пишет событие аутентификации (login_success и т.п.).
func Auth(log zerolog.Logger, action, userID, email string) {
	log.Info().
		Str(FieldAction, action).
		Str(FieldUserID, userID).
		Str(FieldEmail, email).
		Msg("auth event")
}
