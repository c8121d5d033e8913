package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/DLX-TourBookingService/internal/api/handlers"
	"github.com/m04kA/DLX-TourBookingService/internal/auth"
)

const (
	msgMissingToken = "требуется авторизация администратора"
	msgInvalidToken = "недействительный или отозванный токен"
)

type contextKey string

const (
	claimsKey contextKey = "admin_claims"
	tokenKey  contextKey = "admin_token"
)

// TokenVerifier проверяет токен администратора
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*auth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth пропускает запрос только с действительным Bearer токеном администратора
func AdminAuth(verifier TokenVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrTokenRevoked) || errors.Is(err, auth.ErrNotConfigured) {
					logger.Warn("%s %s - Rejected token: %v", r.Method, r.URL.Path, err)
					handlers.RespondUnauthorized(w, msgInvalidToken)
					return
				}
				logger.Error("%s %s - Token verification failed: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			ctx = context.WithValue(ctx, tokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken извлекает токен из заголовка Authorization
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// GetAdmin возвращает claims администратора из контекста
func GetAdmin(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

// GetToken возвращает проверенный токен из контекста
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}
