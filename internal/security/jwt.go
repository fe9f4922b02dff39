package security

import (
	"errors"
	"fmt"
	"time"

	"authntik/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired   = errors.New("токен просрочен")
	ErrTokenInvalid   = errors.New("невалидный токен")
	ErrTokenMalformed = errors.New("токен не разобран")
)

// Claims не содержит признака "access"/"refresh": класс токена определяется
// только секретом, которым он подписан.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

var signingMethod = jwt.SigningMethodHS256

// IssueToken подписывает payload секретом и выставляет iat/exp.
// ID (jti) делает два токена, выпущенных в одну секунду, различными.
func IssueToken(payload model.JwtPayload, secret []byte, expiresIn time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		Email: payload.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.Sub,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			ID:        uuid.New().String(),
		},
	}

	jwtToken := jwt.NewWithClaims(signingMethod, claims)
	token, err := jwtToken.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return token, nil
}

// VerifyToken проверяет подпись и срок жизни токена.
// Возвращает ErrTokenMalformed, ErrTokenExpired или ErrTokenInvalid.
func VerifyToken(tokenStr string, secret []byte) (*model.JwtPayload, error) {
	claims := &Claims{}

	jwtToken, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != signingMethod.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{signingMethod.Alg()}), jwt.WithIssuedAt())

	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
	default:
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if !jwtToken.Valid || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}

	payload := &model.JwtPayload{
		Sub:   claims.Subject,
		Email: claims.Email,
	}
	if claims.IssuedAt != nil {
		payload.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		payload.ExpiresAt = claims.ExpiresAt.Time
	}

	return payload, nil
}

// JWTIssuer реализует ports.TokenIssuer поверх IssueToken/VerifyToken.
type JWTIssuer struct{}

func NewJWTIssuer() *JWTIssuer {
	return &JWTIssuer{}
}

func (issuer *JWTIssuer) Issue(payload model.JwtPayload, secret []byte, expiresIn time.Duration) (string, error) {
	return IssueToken(payload, secret, expiresIn)
}

func (issuer *JWTIssuer) Verify(token string, secret []byte) (*model.JwtPayload, error) {
	return VerifyToken(token, secret)
}
