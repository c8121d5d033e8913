package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken возвращается, когда токен не прошёл проверку подписи или срока
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrTokenRevoked возвращается для токена, отозванного через Logout
	ErrTokenRevoked = errors.New("auth: token revoked")

	// ErrNotConfigured возвращается, когда секрет или учётная запись администратора не заданы
	ErrNotConfigured = errors.New("auth: admin access is not configured")

	// ErrInternal возвращается при ошибках хранилища отзыва
	ErrInternal = errors.New("auth: internal error")
)
