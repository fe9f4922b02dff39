package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"authntik/internal/model"
	"authntik/internal/security"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthService(repo *MockUserRepository, hasher *MockPasswordHasher, issuer *MockTokenIssuer) *AuthenticationService {
	return NewAuthenticationService(repo, hasher, issuer, testConfig(), zerolog.Nop())
}

func TestValidateCredentials_UnknownEmail(t *testing.T) {
	repo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	service := newAuthService(repo, hasher, new(MockTokenIssuer))

	repo.On("FindByEmail", mock.Anything, "missing@example.com").Return(nil, nil)

	user, err := service.ValidateCredentials(context.Background(), "missing@example.com", "password@123")
	assert.NoError(t, err)
	assert.Nil(t, user)
	hasher.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
}

func TestValidateCredentials_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	service := newAuthService(repo, hasher, new(MockTokenIssuer))

	repo.On("FindByEmail", mock.Anything, "user@example.com").Return(testUser(), nil)
	hasher.On("Compare", "wrong", "hash").Return(false, nil)

	user, err := service.ValidateCredentials(context.Background(), "user@example.com", "wrong")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestValidateCredentials_Success(t *testing.T) {
	repo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	service := newAuthService(repo, hasher, new(MockTokenIssuer))

	repo.On("FindByEmail", mock.Anything, "user@example.com").Return(testUser(), nil)
	hasher.On("Compare", "password@123", "hash").Return(true, nil)

	user, err := service.ValidateCredentials(context.Background(), "user@example.com", "password@123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, testUser().ID, user.ID)
}

func TestValidateCredentials_StoreFailure(t *testing.T) {
	repo := new(MockUserRepository)
	service := newAuthService(repo, new(MockPasswordHasher), new(MockTokenIssuer))

	repo.On("FindByEmail", mock.Anything, "user@example.com").Return(nil, errors.New("db down"))

	user, err := service.ValidateCredentials(context.Background(), "user@example.com", "password@123")
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestValidateCredentials_HasherFailure(t *testing.T) {
	repo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	service := newAuthService(repo, hasher, new(MockTokenIssuer))

	repo.On("FindByEmail", mock.Anything, "user@example.com").Return(testUser(), nil)
	hasher.On("Compare", "password@123", "hash").Return(false, errors.New("bad hash"))

	user, err := service.ValidateCredentials(context.Background(), "user@example.com", "password@123")
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestValidateCredentials_NotifiesOnSuccess(t *testing.T) {
	repo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	notifier := &channelNotifier{events: make(chan model.AuthEvent, 1), err: errors.New("webhook down")}
	service := newAuthService(repo, hasher, new(MockTokenIssuer)).WithNotifier(notifier)

	repo.On("FindByEmail", mock.Anything, "user@example.com").Return(testUser(), nil)
	hasher.On("Compare", "password@123", "hash").Return(true, nil)

	user, err := service.ValidateCredentials(context.Background(), "user@example.com", "password@123")
	require.NoError(t, err)
	require.NotNil(t, user)

	select {
	case event := <-notifier.events:
		assert.Equal(t, model.AuthEventLoginSuccess, event.Event)
		assert.Equal(t, user.ID, event.UserID)
		assert.Equal(t, user.Email, event.Email)
	case <-time.After(time.Second):
		t.Fatal("событие не отправлено")
	}
}

func TestGenerateTokens_UsesSeparateSecretsAndTTLs(t *testing.T) {
	issuer := new(MockTokenIssuer)
	service := newAuthService(new(MockUserRepository), new(MockPasswordHasher), issuer)
	payload := model.JwtPayload{Sub: testUser().ID, Email: testUser().Email}

	issuer.On("Issue", payload, []byte("access-secret"), 15*time.Minute).Return("access", nil)
	issuer.On("Issue", payload, []byte("refresh-secret"), 24*time.Hour).Return("refresh", nil)

	tokens, err := service.GenerateTokens(context.Background(), testUser())
	require.NoError(t, err)
	assert.Equal(t, "access", tokens.AccessToken)
	assert.Equal(t, "refresh", tokens.RefreshToken)
	issuer.AssertExpectations(t)
}

func TestGenerateTokens_FailureYieldsNoPartialResult(t *testing.T) {
	issuer := new(MockTokenIssuer)
	service := newAuthService(new(MockUserRepository), new(MockPasswordHasher), issuer)

	issuer.On("Issue", mock.Anything, []byte("access-secret"), mock.Anything).Return("access", nil)
	issuer.On("Issue", mock.Anything, []byte("refresh-secret"), mock.Anything).Return("", errors.New("sign failed"))

	tokens, err := service.GenerateTokens(context.Background(), testUser())
	assert.ErrorContains(t, err, "sign failed")
	assert.Nil(t, tokens)
}

func TestGenerateTokens_RealIssuerPairIndependence(t *testing.T) {
	service := NewAuthenticationService(new(MockUserRepository), new(MockPasswordHasher), security.NewJWTIssuer(), testConfig(), zerolog.Nop())

	tokens, err := service.GenerateTokens(context.Background(), testUser())
	require.NoError(t, err)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)

	_, err = service.VerifyAccessToken(tokens.RefreshToken)
	assert.ErrorIs(t, err, security.ErrTokenInvalid)
	_, err = service.VerifyRefreshToken(tokens.AccessToken)
	assert.ErrorIs(t, err, security.ErrTokenInvalid)

	access, err := service.VerifyAccessToken(tokens.AccessToken)
	require.NoError(t, err)
	refresh, err := service.VerifyRefreshToken(tokens.RefreshToken)
	require.NoError(t, err)

	assert.Equal(t, access.Sub, refresh.Sub)
	assert.Equal(t, access.Email, refresh.Email)
	assert.True(t, refresh.ExpiresAt.After(access.ExpiresAt))
}

func TestRefreshTokens_RotatesBoth(t *testing.T) {
	service := NewAuthenticationService(new(MockUserRepository), new(MockPasswordHasher), security.NewJWTIssuer(), testConfig(), zerolog.Nop())

	first, err := service.GenerateTokens(context.Background(), testUser())
	require.NoError(t, err)
	second, err := service.RefreshTokens(context.Background(), testUser())
	require.NoError(t, err)

	assert.NotEqual(t, first.AccessToken, second.AccessToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// старый refresh токен не отзывается
	_, err = service.VerifyRefreshToken(first.RefreshToken)
	assert.NoError(t, err)
}

func TestLogin_ReturnsSanitizedUser(t *testing.T) {
	issuer := new(MockTokenIssuer)
	service := newAuthService(new(MockUserRepository), new(MockPasswordHasher), issuer)

	issuer.On("Issue", mock.Anything, mock.Anything, mock.Anything).Return("token", nil)

	response, err := service.Login(context.Background(), testUser())
	require.NoError(t, err)
	assert.Equal(t, model.UserSummary{ID: testUser().ID, Email: "user@example.com", FullName: "John Doe"}, response.User)
	assert.Equal(t, "token", response.Tokens.AccessToken)
}

func TestCookieOptions(t *testing.T) {
	service := newAuthService(new(MockUserRepository), new(MockPasswordHasher), new(MockTokenIssuer))

	options := service.GetCookieOptions()
	assert.True(t, options.HTTPOnly)
	assert.True(t, options.Secure)
	assert.Equal(t, "strict", options.SameSite)
	assert.Equal(t, time.Hour, options.MaxAge)

	refresh := service.GetRefreshCookieOptions()
	assert.Equal(t, 7*24*time.Hour, refresh.MaxAge)
	assert.Equal(t, options.SameSite, refresh.SameSite)
}

func TestLogout(t *testing.T) {
	service := newAuthService(new(MockUserRepository), new(MockPasswordHasher), new(MockTokenIssuer))

	assert.Equal(t, "Logged out successfully", service.Logout().Message)
	assert.Equal(t, service.Logout(), service.Logout())
}

func TestFindUser(t *testing.T) {
	repo := new(MockUserRepository)
	service := newAuthService(repo, new(MockPasswordHasher), new(MockTokenIssuer))

	repo.On("FindByID", mock.Anything, "known").Return(testUser(), nil)
	repo.On("FindByID", mock.Anything, "unknown").Return(nil, nil)
	repo.On("FindByID", mock.Anything, "broken").Return(nil, errors.New("db down"))

	user, err := service.FindUser(context.Background(), "known")
	require.NoError(t, err)
	assert.Equal(t, testUser().Email, user.Email)

	_, err = service.FindUser(context.Background(), "unknown")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = service.FindUser(context.Background(), "broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}
