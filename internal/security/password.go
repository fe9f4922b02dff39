package security

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const PasswordHashCost = 10

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: PasswordHashCost}
}

func (hasher *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hasher.cost)
	if err != nil {
		return "", fmt.Errorf("ошибка хэширования: %w", err)
	}
	return string(hash), nil
}

// Compare возвращает false без ошибки только при несовпадении пароля.
// Любая другая ошибка bcrypt (битый хэш и т.п.) пробрасывается наверх.
func (hasher *BcryptHasher) Compare(password string, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("ошибка сравнения хэша: %w", err)
	}
}
