package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL время жизни токена администратора по умолчанию
const DefaultTokenTTL = 8 * time.Hour

// RoleAdmin роль, которую несёт токен back-office
const RoleAdmin = "admin"

// Config настройки доступа администратора
type Config struct {
	Username     string
	PasswordHash string // bcrypt
	Secret       string // ключ подписи HS256
	Issuer       string
	TokenTTL     time.Duration
}

// Claims содержимое токена администратора
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Token выданный токен
type Token struct {
	Value     string
	ID        string
	ExpiresAt time.Time
}

// Authenticator выдаёт и проверяет токены администратора
type Authenticator struct {
	cfg          Config
	revocations  RevocationStore
	timeProvider TimeProvider
	logger       Logger
}

// NewAuthenticator создает новый Authenticator
func NewAuthenticator(cfg Config, revocations RevocationStore, logger Logger) *Authenticator {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = DefaultTokenTTL
	}
	return &Authenticator{
		cfg:          cfg,
		revocations:  revocations,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (a *Authenticator) WithTimeProvider(tp TimeProvider) *Authenticator {
	a.timeProvider = tp
	return a
}

// Login проверяет учётные данные и выдаёт подписанный токен
func (a *Authenticator) Login(ctx context.Context, username, password string) (*Token, error) {
	if !a.configured() {
		a.logger.Error("Auth.Login: admin credentials are not configured")
		return nil, ErrNotConfigured
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.cfg.Username)) == 1
	// Хэш сравниваем всегда, чтобы время ответа не зависело от логина
	passErr := bcrypt.CompareHashAndPassword([]byte(a.cfg.PasswordHash), []byte(password))
	if !userOK || passErr != nil {
		a.logger.Warn("Auth.Login: failed login attempt for user=%q", username)
		return nil, ErrInvalidCredentials
	}

	now := a.timeProvider.Now()
	expiresAt := now.Add(a.cfg.TokenTTL)
	tokenID := uuid.NewString()

	claims := &Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   a.cfg.Username,
			Issuer:    a.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.cfg.Secret))
	if err != nil {
		a.logger.Error("Auth.Login: failed to sign token: %v", err)
		return nil, fmt.Errorf("%w: Login - sign token: %v", ErrInternal, err)
	}

	a.logger.Info("Auth.Login: user=%s logged in, token=%s", username, tokenID)

	return &Token{Value: signed, ID: tokenID, ExpiresAt: expiresAt}, nil
}

// Verify проверяет подпись, срок действия и отзыв токена
func (a *Authenticator) Verify(ctx context.Context, token string) (*Claims, error) {
	if !a.configured() {
		return nil, ErrNotConfigured
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(a.cfg.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.timeProvider.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Role != RoleAdmin || claims.ID == "" {
		return nil, fmt.Errorf("%w: unexpected claims", ErrInvalidToken)
	}

	revoked, err := a.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		a.logger.Error("Auth.Verify: failed to check revocation of token=%s: %v", claims.ID, err)
		return nil, fmt.Errorf("%w: Verify - revocation check: %v", ErrInternal, err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

// Logout отзывает токен до истечения его срока
func (a *Authenticator) Logout(ctx context.Context, token string) error {
	claims, err := a.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, ErrTokenRevoked) {
			return nil
		}
		return err
	}

	if err := a.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		a.logger.Error("Auth.Logout: failed to revoke token=%s: %v", claims.ID, err)
		return fmt.Errorf("%w: Logout - revoke: %v", ErrInternal, err)
	}

	a.logger.Info("Auth.Logout: token=%s revoked", claims.ID)
	return nil
}

func (a *Authenticator) configured() bool {
	return a.cfg.Username != "" && a.cfg.PasswordHash != "" && a.cfg.Secret != ""
}

// HashPassword возвращает bcrypt-хэш пароля для конфигурации
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
