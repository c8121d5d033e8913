package list_services

import (
	"errors"
	"net/http"

	"github.com/m04kA/DLX-TourBookingService/internal/api/handlers"
	"github.com/m04kA/DLX-TourBookingService/internal/service/catalog"
)

const (
	msgInvalidCategory = "некорректная категория услуги"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
// Query params: category (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var category *string
	if c := r.URL.Query().Get("category"); c != "" {
		category = &c
	}

	result, err := h.service.List(r.Context(), category)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /services - Invalid category: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		default:
			h.logger.Error("GET /services - Failed to list services: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services - Services retrieved: count=%d", len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
