package admin_login

import (
	"time"

	"github.com/m04kA/DLX-TourBookingService/internal/auth"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresAt   string `json:"expiresAt"`
}

// FromToken конвертирует токен в HTTP response
func FromToken(t *auth.Token) *LoginResponse {
	return &LoginResponse{
		AccessToken: t.Value,
		TokenType:   "Bearer",
		ExpiresAt:   t.ExpiresAt.UTC().Format(time.RFC3339),
	}
}
