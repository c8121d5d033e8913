package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/DLX-TourBookingService/internal/wizard"
)

const (
	sessionKeyPrefix = "dlx:wizard:"
	claimKeyPrefix   = "dlx:wizard-submit:"
	revokedKeyPrefix = "dlx:revoked:"
)

// SessionStore хранилище сессий мастера бронирования
// Каждое сохранение продлевает TTL сессии
type SessionStore struct {
	backend Backend
	ttl     time.Duration
}

// NewSessionStore создает хранилище сессий
func NewSessionStore(backend Backend, ttl time.Duration) *SessionStore {
	return &SessionStore{backend: backend, ttl: ttl}
}

// Save сохраняет сессию
func (s *SessionStore) Save(ctx context.Context, session *wizard.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: marshal session %s: %v", ErrCodec, session.ID, err)
	}
	return s.backend.Set(ctx, sessionKeyPrefix+session.ID, data, s.ttl)
}

// Get загружает сессию по ID
func (s *SessionStore) Get(ctx context.Context, id string) (*wizard.Session, error) {
	data, err := s.backend.Get(ctx, sessionKeyPrefix+id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session wizard.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("%w: unmarshal session %s: %v", ErrCodec, id, err)
	}
	return &session, nil
}

// Delete удаляет сессию
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.backend.Delete(ctx, sessionKeyPrefix+id)
}

// ClaimSubmit атомарно закрепляет отправку сессии за вызывающим.
// false - отправка уже идёт или завершена. Метка живёт столько же, сколько сессия
func (s *SessionStore) ClaimSubmit(ctx context.Context, id string) (bool, error) {
	return s.backend.SetNX(ctx, claimKeyPrefix+id, []byte("1"), s.ttl)
}

// ReleaseSubmit снимает метку отправки, чтобы после ошибки можно было отправить повторно
func (s *SessionStore) ReleaseSubmit(ctx context.Context, id string) error {
	return s.backend.Delete(ctx, claimKeyPrefix+id)
}

// RevocationStore список отозванных токенов администратора
// Запись хранится до истечения срока действия токена
type RevocationStore struct {
	backend Backend
	now     func() time.Time
}

// NewRevocationStore создает хранилище отозванных токенов
func NewRevocationStore(backend Backend) *RevocationStore {
	return &RevocationStore{backend: backend, now: time.Now}
}

// Revoke отзывает токен до момента expiresAt
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	return s.backend.Set(ctx, revokedKeyPrefix+tokenID, []byte("1"), ttl)
}

// IsRevoked проверяет, отозван ли токен
func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return s.backend.Exists(ctx, revokedKeyPrefix+tokenID)
}
