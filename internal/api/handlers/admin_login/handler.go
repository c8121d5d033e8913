package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/DLX-TourBookingService/internal/api/handlers"
	"github.com/m04kA/DLX-TourBookingService/internal/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный логин или пароль"
	msgNotConfigured      = "доступ администратора не настроен"
)

type Handler struct {
	authenticator Authenticator
	logger        Logger
}

func NewHandler(authenticator Authenticator, logger Logger) *Handler {
	return &Handler{
		authenticator: authenticator,
		logger:        logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	token, err := h.authenticator.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /admin/login - Invalid credentials: username=%q", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, auth.ErrNotConfigured):
			h.logger.Error("POST /admin/login - Admin access is not configured")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgNotConfigured)

		default:
			h.logger.Error("POST /admin/login - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/login - Admin logged in: username=%s", req.Username)
	handlers.RespondJSON(w, http.StatusOK, FromToken(token))
}
