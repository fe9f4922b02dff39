package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
	EnvironmentTest        = "test"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Cookie   CookieConfig   `yaml:"cookie"`
	Logger   LoggerConfig   `yaml:"logger"`
	CORS     CORSConfig     `yaml:"cors"`
	Webhook  WebhookConfig  `yaml:"webhook"`
}

type AppConfig struct {
	Environment string `yaml:"environment"`
	Debug       bool   `yaml:"debug"`
}

type ServerConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	BasePath string `yaml:"base_path"`
}

type DatabaseConfig struct {
	Driver           string `yaml:"driver"`
	ConnectionString string `yaml:"connection_string"`
	Migrate          bool   `yaml:"migrate"`
}

// JWTConfig содержит две независимые пары секрет/время жизни:
// для access и для refresh токенов.
type JWTConfig struct {
	AccessSecret    string   `yaml:"access_secret"`
	AccessTokenTTL  Duration `yaml:"access_token_ttl"`
	RefreshSecret   string   `yaml:"refresh_secret"`
	RefreshTokenTTL Duration `yaml:"refresh_token_ttl"`
}

type CookieConfig struct {
	Secure   *bool    `yaml:"secure"`
	SameSite string   `yaml:"same_site"`
	MaxAge   Duration `yaml:"max_age"`
}

type LoggerConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type WebhookConfig struct {
	URL     string   `yaml:"url"`
	Timeout Duration `yaml:"timeout"`
}

// IsSecure сообщает, нужен ли флаг Secure у cookie. Явное значение из
// файла или COOKIE_SECURE важнее значения по умолчанию для окружения.
func (c CookieConfig) IsSecure() bool {
	return c.Secure != nil && *c.Secure
}

// PortNumber возвращает порт числом, 0 если порт не число.
func (c *ServerConfig) PortNumber() int {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return 0
	}
	return port
}

// Address возвращает адрес, на котором слушает HTTP сервер.
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c *Config) ApplyDefaults() {
	if c.App.Environment == "" {
		c.App.Environment = EnvironmentDevelopment
	}
	if c.Server.Port == "" {
		c.Server.Port = "8000"
	}
	if c.Server.BasePath == "" {
		c.Server.BasePath = "/v1"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.JWT.AccessTokenTTL == 0 {
		c.JWT.AccessTokenTTL = Duration(24 * time.Hour)
	}
	if c.JWT.RefreshTokenTTL == 0 {
		c.JWT.RefreshTokenTTL = Duration(7 * 24 * time.Hour)
	}
	if c.Cookie.SameSite == "" {
		c.Cookie.SameSite = "lax"
	}
	if c.Cookie.MaxAge == 0 {
		c.Cookie.MaxAge = Duration(7 * 24 * time.Hour)
	}
	if c.Cookie.Secure == nil {
		secure := c.App.Environment == EnvironmentProduction
		c.Cookie.Secure = &secure
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Format == "" {
		c.Logger.Format = "console"
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:8000"}
	}
	if c.Webhook.Timeout == 0 {
		c.Webhook.Timeout = Duration(5 * time.Second)
	}
}

// Validate проверяет конфигурацию. Ошибка здесь фатальна при старте сервиса.
func (c *Config) Validate() error {
	var errs []error

	switch c.App.Environment {
	case EnvironmentDevelopment, EnvironmentProduction, EnvironmentTest:
	default:
		errs = append(errs, fmt.Errorf("app.environment должен быть одним из [development, production, test], получено: %q", c.App.Environment))
	}

	if c.JWT.AccessSecret == "" {
		errs = append(errs, errors.New("jwt.access_secret не задан"))
	}
	if c.JWT.RefreshSecret == "" {
		errs = append(errs, errors.New("jwt.refresh_secret не задан"))
	}
	if c.JWT.AccessSecret != "" && c.JWT.AccessSecret == c.JWT.RefreshSecret {
		errs = append(errs, errors.New("jwt.access_secret и jwt.refresh_secret должны различаться"))
	}
	if c.JWT.AccessTokenTTL <= 0 {
		errs = append(errs, errors.New("jwt.access_token_ttl должен быть положительным"))
	}
	if c.JWT.RefreshTokenTTL <= c.JWT.AccessTokenTTL {
		errs = append(errs, fmt.Errorf("jwt.refresh_token_ttl (%s) должен быть больше jwt.access_token_ttl (%s)", c.JWT.RefreshTokenTTL, c.JWT.AccessTokenTTL))
	}

	switch strings.ToLower(c.Cookie.SameSite) {
	case "strict", "lax", "none":
	default:
		errs = append(errs, fmt.Errorf("cookie.same_site должен быть одним из [strict, lax, none], получено: %q", c.Cookie.SameSite))
	}
	if c.Cookie.MaxAge <= 0 {
		errs = append(errs, errors.New("cookie.max_age должен быть положительным"))
	}

	if port := c.Server.PortNumber(); port <= 0 || port > 65535 {
		errs = append(errs, fmt.Errorf("server.port должен быть числом от 1 до 65535, получено: %q", c.Server.Port))
	}

	if c.Database.ConnectionString == "" {
		errs = append(errs, errors.New("database.connection_string не задан"))
	}

	return errors.Join(errs...)
}
