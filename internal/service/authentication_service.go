package service

import (
	"context"
	"fmt"
	"time"

	"authntik/config"
	"authntik/internal/logger"
	"authntik/internal/model"
	"authntik/internal/ports"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	refreshCookieMaxAge = 7 * 24 * time.Hour
	notifyTimeout       = 10 * time.Second
	logoutMessage       = "Logged out successfully"
)

type AuthenticationService struct {
	UserRepository ports.UserRepositoryInterface
	PasswordHasher ports.PasswordHasherInterface
	TokenIssuer    ports.TokenIssuerInterface
	Notifier       ports.AuthEventNotifierInterface
	JWTConfig      config.JWTConfig
	CookieConfig   config.CookieConfig
	log            zerolog.Logger
}

func NewAuthenticationService(
	userRepository ports.UserRepositoryInterface,
	passwordHasher ports.PasswordHasherInterface,
	tokenIssuer ports.TokenIssuerInterface,
	cfg *config.Config,
	log zerolog.Logger,
) *AuthenticationService {
	return &AuthenticationService{
		UserRepository: userRepository,
		PasswordHasher: passwordHasher,
		TokenIssuer:    tokenIssuer,
		JWTConfig:      cfg.JWT,
		CookieConfig:   cfg.Cookie,
		log:            logger.WithComponent(log, "auth"),
	}
}

// WithNotifier включает асинхронную отправку событий аутентификации.
func (service *AuthenticationService) WithNotifier(notifier ports.AuthEventNotifierInterface) *AuthenticationService {
	service.Notifier = notifier
	return service
}

// ValidateCredentials возвращает пользователя при совпадении пароля.
// Неизвестный email и неверный пароль дают nil без ошибки, ошибка означает
// сбой хранилища или хэшера.
func (service *AuthenticationService) ValidateCredentials(ctx context.Context, email string, password string) (*model.User, error) {
	user, err := service.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска пользователя: %w", err)
	}
	if user == nil {
		service.log.Warn().Str(logger.FieldEmail, email).Str(logger.FieldReason, "user not found").Msg("login failed")
		return nil, nil
	}

	ok, err := service.PasswordHasher.Compare(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки пароля: %w", err)
	}
	if !ok {
		service.log.Warn().Str(logger.FieldEmail, email).Str(logger.FieldReason, "wrong password").Msg("login failed")
		return nil, nil
	}

	logger.Auth(service.log, model.AuthEventLoginSuccess, user.ID, user.Email)
	service.notify(model.AuthEvent{
		Event:     model.AuthEventLoginSuccess,
		UserID:    user.ID,
		Email:     user.Email,
		Timestamp: time.Now().UTC(),
	})

	return user, nil
}

func (service *AuthenticationService) Login(ctx context.Context, user *model.User) (*model.AuthResponse, error) {
	tokens, err := service.GenerateTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{
		User:   user.Summary(),
		Tokens: *tokens,
	}, nil
}

// GenerateTokens подписывает access и refresh токены параллельно.
// Ошибка любой из подписей отменяет всю операцию.
func (service *AuthenticationService) GenerateTokens(ctx context.Context, user *model.User) (*model.AuthTokens, error) {
	payload := model.JwtPayload{Sub: user.ID, Email: user.Email}
	tokens := &model.AuthTokens{}

	var group errgroup.Group
	group.Go(func() error {
		token, err := service.TokenIssuer.Issue(payload, []byte(service.JWTConfig.AccessSecret), service.JWTConfig.AccessTokenTTL.Std())
		if err != nil {
			return fmt.Errorf("ошибка генерации access токена: %w", err)
		}
		tokens.AccessToken = token
		return nil
	})
	group.Go(func() error {
		token, err := service.TokenIssuer.Issue(payload, []byte(service.JWTConfig.RefreshSecret), service.JWTConfig.RefreshTokenTTL.Std())
		if err != nil {
			return fmt.Errorf("ошибка генерации refresh токена: %w", err)
		}
		tokens.RefreshToken = token
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return tokens, nil
}

// RefreshTokens выпускает новую пару: старый refresh токен остается валидным
// до истечения срока, сервер его не хранит.
func (service *AuthenticationService) RefreshTokens(ctx context.Context, user *model.User) (*model.AuthTokens, error) {
	return service.GenerateTokens(ctx, user)
}

func (service *AuthenticationService) Logout() model.LogoutResponse {
	return model.LogoutResponse{Message: logoutMessage}
}

func (service *AuthenticationService) GetCookieOptions() model.CookieOptions {
	return model.CookieOptions{
		HTTPOnly: true,
		Secure:   service.CookieConfig.IsSecure(),
		SameSite: service.CookieConfig.SameSite,
		MaxAge:   service.CookieConfig.MaxAge.Std(),
	}
}

// GetRefreshCookieOptions совпадает с GetCookieOptions, кроме срока жизни.
func (service *AuthenticationService) GetRefreshCookieOptions() model.CookieOptions {
	options := service.GetCookieOptions()
	options.MaxAge = refreshCookieMaxAge
	return options
}

func (service *AuthenticationService) VerifyAccessToken(token string) (*model.JwtPayload, error) {
	return service.TokenIssuer.Verify(token, []byte(service.JWTConfig.AccessSecret))
}

func (service *AuthenticationService) VerifyRefreshToken(token string) (*model.JwtPayload, error) {
	return service.TokenIssuer.Verify(token, []byte(service.JWTConfig.RefreshSecret))
}

// FindUser загружает пользователя по sub токена.
func (service *AuthenticationService) FindUser(ctx context.Context, id string) (*model.User, error) {
	user, err := service.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска пользователя: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (service *AuthenticationService) notify(event model.AuthEvent) {
	if service.Notifier == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := service.Notifier.NotifyAuthEvent(ctx, event); err != nil {
			service.log.Error().Err(err).Str(logger.FieldUserID, event.UserID).Msg("ошибка отправки webhook")
		}
	}()
}
