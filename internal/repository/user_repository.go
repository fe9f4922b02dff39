package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"authntik/internal"
	"authntik/internal/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrDuplicateEmail возвращается Create, если email уже занят.
var ErrDuplicateEmail = errors.New("пользователь с таким email уже существует")

const uniqueViolation = "23505"

type UserRepository struct {
	*internal.Database
}

func NewUserRepository(database *internal.Database) *UserRepository {
	return &UserRepository{database}
}

func (repository *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	now := time.Now().UTC()
	user.ID = uuid.New().String()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `INSERT INTO users (id, email, full_name, password_hash, created_at, updated_at)
			  VALUES (:id, :email, :full_name, :password_hash, :created_at, :updated_at)`

	_, err := repository.DB.NamedExecContext(ctx, query, user)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("ошибка вставки пользователя: %w", err)
	}

	return user, nil
}

// FindByEmail возвращает nil без ошибки, если пользователь не найден.
func (repository *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return repository.findOne(ctx, `SELECT id, email, full_name, password_hash, created_at, updated_at
			  FROM users WHERE email = $1`, email)
}

// FindByID возвращает nil без ошибки, если пользователь не найден.
func (repository *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	return repository.findOne(ctx, `SELECT id, email, full_name, password_hash, created_at, updated_at
			  FROM users WHERE id = $1`, id)
}

func (repository *UserRepository) findOne(ctx context.Context, query string, arg string) (*model.User, error) {
	var user model.User

	err := repository.DB.GetContext(ctx, &user, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return &user, nil
}
