package session

import "errors"

var (
	// ErrNotFound возвращается бэкендом, когда ключ отсутствует или истёк
	ErrNotFound = errors.New("session.store: key not found")

	// ErrSessionNotFound возвращается, когда сессия мастера не найдена или истекла
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("session.store: storage error")

	// ErrCodec возвращается при ошибках сериализации
	ErrCodec = errors.New("session.store: failed to encode session")
)
