package ports

import (
	"context"
	"time"

	"authntik/internal/model"
)

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}

type PasswordHasherInterface interface {
	Hash(password string) (string, error)
	Compare(password string, hash string) (bool, error)
}

type TokenIssuerInterface interface {
	Issue(payload model.JwtPayload, secret []byte, expiresIn time.Duration) (string, error)
	Verify(token string, secret []byte) (*model.JwtPayload, error)
}

type AuthEventNotifierInterface interface {
	NotifyAuthEvent(ctx context.Context, event model.AuthEvent) error
}
