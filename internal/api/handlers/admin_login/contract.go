package admin_login

import (
	"context"

	"github.com/m04kA/DLX-TourBookingService/internal/auth"
)

type Authenticator interface {
	Login(ctx context.Context, username, password string) (*auth.Token, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
