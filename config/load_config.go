package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadConfig читает YAML файл (если путь задан), затем .env и переменные
// окружения, которые имеют приоритет над файлом. Результат проверяется Validate.
func LoadConfig(filePath string, envFiles ...string) (*Config, error) {
	var cfg Config

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения файла конфигурации: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("ошибка парсинга .yaml файла: %w", err)
		}
	}

	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("невалидная конфигурация: %w", err)
	}

	return &cfg, nil
}

func loadEnvFiles(envFiles ...string) error {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("ошибка чтения %s: %w", path, err)
		}
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v, ok := lookupEnv("NODE_ENV"); ok {
		cfg.App.Environment = v
	}
	if v, ok := lookupEnv("DEBUG"); ok {
		cfg.App.Debug = v == "true"
	}
	if v, ok := lookupEnv("HOST"); ok {
		cfg.Server.Host = v
	}
	if v, ok := lookupEnv("PORT"); ok {
		cfg.Server.Port = v
	}
	if v, ok := lookupEnv("BASE_PATH"); ok {
		cfg.Server.BasePath = v
	}
	if v, ok := lookupEnv("DATABASE_DRIVER"); ok {
		cfg.Database.Driver = v
	}
	if v, ok := lookupEnv("DATABASE_URL"); ok {
		cfg.Database.ConnectionString = v
	}
	if v, ok := lookupEnv("DATABASE_MIGRATE"); ok {
		cfg.Database.Migrate = v == "true"
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		cfg.Logger.Level = strings.ToLower(v)
	}
	if v, ok := lookupEnv("LOG_FORMAT"); ok {
		cfg.Logger.Format = strings.ToLower(v)
	}

	if v, ok := lookupEnv("JWT_SECRET"); ok {
		cfg.JWT.AccessSecret = v
	}
	if v, ok := lookupEnv("JWT_REFRESH_SECRET"); ok {
		cfg.JWT.RefreshSecret = v
	}
	if v, ok := lookupEnv("JWT_EXPIRES_IN"); ok {
		d, err := ParseDuration(v)
		if err != nil {
			return fmt.Errorf("JWT_EXPIRES_IN: %w", err)
		}
		cfg.JWT.AccessTokenTTL = d
	}
	if v, ok := lookupEnv("JWT_REFRESH_EXPIRES_IN"); ok {
		d, err := ParseDuration(v)
		if err != nil {
			return fmt.Errorf("JWT_REFRESH_EXPIRES_IN: %w", err)
		}
		cfg.JWT.RefreshTokenTTL = d
	}

	if v, ok := lookupEnv("COOKIE_SECURE"); ok {
		secure := v == "true"
		cfg.Cookie.Secure = &secure
	}
	if v, ok := lookupEnv("COOKIE_SAME_SITE"); ok {
		cfg.Cookie.SameSite = strings.ToLower(v)
	}
	// COOKIE_MAX_AGE задается в миллисекундах.
	if v, ok := lookupEnv("COOKIE_MAX_AGE"); ok {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("COOKIE_MAX_AGE: %w", err)
		}
		cfg.Cookie.MaxAge = Duration(time.Duration(ms) * time.Millisecond)
	}

	if v, ok := lookupEnv("FRONTEND_URL"); ok {
		cfg.CORS.AllowedOrigins = []string{v, "http://localhost:8000"}
	}
	if v, ok := lookupEnv("WEBHOOK_URL"); ok {
		cfg.Webhook.URL = v
	}

	return nil
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}
