package service

import (
	"context"
	"errors"
	"fmt"

	"authntik/internal/logger"
	"authntik/internal/model"
	"authntik/internal/ports"
	"authntik/internal/repository"

	"github.com/rs/zerolog"
)

type UserService struct {
	UserRepository ports.UserRepositoryInterface
	PasswordHasher ports.PasswordHasherInterface
	log            zerolog.Logger
}

func NewUserService(userRepository ports.UserRepositoryInterface, passwordHasher ports.PasswordHasherInterface, log zerolog.Logger) *UserService {
	return &UserService{
		UserRepository: userRepository,
		PasswordHasher: passwordHasher,
		log:            logger.WithComponent(log, "users"),
	}
}

// Register создает пользователя. Запрос должен быть уже провалидирован.
func (service *UserService) Register(ctx context.Context, request model.RegisterRequest) (*model.UserProfile, error) {
	existing, err := service.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска пользователя: %w", err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	passwordHash, err := service.PasswordHasher.Hash(request.Password)
	if err != nil {
		return nil, err
	}

	user, err := service.UserRepository.Create(ctx, &model.User{
		Email:        request.Email,
		FullName:     request.FullName,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("ошибка создания пользователя: %w", err)
	}

	service.log.Info().Str(logger.FieldUserID, user.ID).Str(logger.FieldEmail, user.Email).Msg("пользователь зарегистрирован")

	profile := user.Profile()
	return &profile, nil
}

func (service *UserService) GetProfile(ctx context.Context, id string) (*model.UserProfile, error) {
	user, err := service.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска пользователя: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile := user.Profile()
	return &profile, nil
}
