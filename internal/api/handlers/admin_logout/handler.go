package admin_logout

import (
	"net/http"

	"github.com/m04kA/DLX-TourBookingService/internal/api/handlers"
	"github.com/m04kA/DLX-TourBookingService/internal/api/middleware"
)

const (
	msgMissingToken = "отсутствует токен"
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

// Handle POST /api/v1/admin/logout
// Токен уже проверен middleware AdminAuth
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/logout - Missing token in context")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	if err := h.authenticator.Logout(r.Context(), token); err != nil {
		h.logger.Error("POST /admin/logout - Failed to revoke token: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/logout - Token revoked")
	w.WriteHeader(http.StatusNoContent)
}
