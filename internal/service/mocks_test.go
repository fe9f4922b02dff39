package service

import (
	"context"
	"time"

	"authntik/config"
	"authntik/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	created, _ := args.Get(0).(*model.User)
	return created, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(password string, hash string) (bool, error) {
	args := m.Called(password, hash)
	return args.Bool(0), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(payload model.JwtPayload, secret []byte, expiresIn time.Duration) (string, error) {
	args := m.Called(payload, secret, expiresIn)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) Verify(token string, secret []byte) (*model.JwtPayload, error) {
	args := m.Called(token, secret)
	payload, _ := args.Get(0).(*model.JwtPayload)
	return payload, args.Error(1)
}

type channelNotifier struct {
	events chan model.AuthEvent
	err    error
}

func (n *channelNotifier) NotifyAuthEvent(ctx context.Context, event model.AuthEvent) error {
	n.events <- event
	return n.err
}

func testConfig() *config.Config {
	secure := true
	return &config.Config{
		JWT: config.JWTConfig{
			AccessSecret:    "access-secret",
			AccessTokenTTL:  config.Duration(15 * time.Minute),
			RefreshSecret:   "refresh-secret",
			RefreshTokenTTL: config.Duration(24 * time.Hour),
		},
		Cookie: config.CookieConfig{
			Secure:   &secure,
			SameSite: "strict",
			MaxAge:   config.Duration(time.Hour),
		},
	}
}

func testUser() *model.User {
	return &model.User{
		ID:           "123e4567-e89b-12d3-a456-426614174000",
		Email:        "user@example.com",
		FullName:     "John Doe",
		PasswordHash: "hash",
	}
}
