package service

import "errors"

var (
	ErrInvalidCredentials  = errors.New("неверный email или пароль")
	ErrRefreshTokenMissing = errors.New("refresh токен не передан")
	ErrUserNotFound        = errors.New("пользователь не найден")
	ErrUserAlreadyExists   = errors.New("пользователь с таким email уже существует")
)
