package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/DLX-TourBookingService/internal/infra/session"
	"github.com/m04kA/DLX-TourBookingService/pkg/logger"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type failingRevocations struct{}

func (failingRevocations) Revoke(context.Context, string, time.Time) error {
	return errors.New("redis down")
}

func (failingRevocations) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func testConfig(t *testing.T) Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	return Config{
		Username:     "admin",
		PasswordHash: string(hash),
		Secret:       "test-signing-key",
		Issuer:       "dlx-tour-booking",
		TokenTTL:     time.Hour,
	}
}

func newAuthenticator(t *testing.T) *Authenticator {
	t.Helper()
	return NewAuthenticator(testConfig(t), session.NewRevocationStore(session.NewMemoryBackend()), logger.NewNop())
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	token, err := a.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

	claims, err := a.Verify(ctx, token.Value)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, token.ID, claims.ID)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	a := newAuthenticator(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "nope"},
		{name: "wrong user", username: "root", password: "s3cret"},
		{name: "empty", username: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Login(context.Background(), tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestLogin_NotConfigured(t *testing.T) {
	a := NewAuthenticator(Config{}, session.NewRevocationStore(session.NewMemoryBackend()), logger.NewNop())

	_, err := a.Login(context.Background(), "admin", "s3cret")

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestVerify_RejectsExpiredToken(t *testing.T) {
	a := newAuthenticator(t)
	token, err := a.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)

	a.WithTimeProvider(fixedTime{t: time.Now().Add(2 * time.Hour)})
	_, err = a.Verify(context.Background(), token.Value)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsForeignSignature(t *testing.T) {
	a := newAuthenticator(t)
	claims := &Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "forged",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-key"))
	require.NoError(t, err)

	_, err = a.Verify(context.Background(), forged)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = a.Verify(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogout_RevokesToken(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()
	token, err := a.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)

	require.NoError(t, a.Logout(ctx, token.Value))

	_, err = a.Verify(ctx, token.Value)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	// Повторный выход не ошибка
	assert.NoError(t, a.Logout(ctx, token.Value))

	other, err := a.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)
	_, err = a.Verify(ctx, other.Value)
	assert.NoError(t, err)
}

func TestVerify_RevocationStoreFailure(t *testing.T) {
	cfg := testConfig(t)
	a := NewAuthenticator(cfg, failingRevocations{}, logger.NewNop())
	token, err := a.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)

	_, err = a.Verify(context.Background(), token.Value)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pa55")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pa55")))
}
