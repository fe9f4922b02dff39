package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"authntik/config"
	"authntik/config/server"
	"authntik/internal/handler"
	"authntik/internal/logger"
	"authntik/internal/notifier"
	"authntik/internal/repository"
	"authntik/internal/security"
	"authntik/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "путь к YAML конфигурации")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		bootLog := logger.New(config.LoggerConfig{})
		bootLog.Fatal().Err(err).Msg("некорректная конфигурация")
	}

	log := logger.New(cfg.Logger)

	database, err := server.SetupDatabase(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("не удалось подключиться к БД")
	}
	defer database.Close()

	userRepository := repository.NewUserRepository(database)
	passwordHasher := security.NewBcryptHasher()

	authenticationService := service.NewAuthenticationService(userRepository, passwordHasher, security.NewJWTIssuer(), cfg, log)
	if cfg.Webhook.URL != "" {
		authenticationService.WithNotifier(notifier.NewWebhookNotifier(cfg.Webhook.URL, cfg.Webhook.Timeout.Std(), log))
	}
	userService := service.NewUserService(userRepository, passwordHasher, log)

	router := handler.NewRouter(cfg, handler.Services{
		Authentication: authenticationService,
		Users:          userService,
	}, log)

	runServer(ctx, server.SetupServer(cfg.Server, router), log)
}

func runServer(ctx context.Context, server *http.Server, log zerolog.Logger) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("сервер запущен")
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ошибка работы сервера")
		}
	case sig := <-signalChannel:
		log.Info().Str("signal", sig.String()).Msg("получен сигнал остановки работы сервера")
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Error().Err(err).Msg("ошибка при остановке сервера")
	} else {
		log.Info().Msg("сервер успешно остановлен")
	}
}
