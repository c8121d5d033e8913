package get_document

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/DLX-TourBookingService/internal/api/handlers"
	"github.com/m04kA/DLX-TourBookingService/internal/documents"
	generateDocument "github.com/m04kA/DLX-TourBookingService/internal/usecase/generate_document"
)

const (
	msgInvalidKind = "неизвестный тип документа, ожидается invoice или ticket"
	msgNotFound    = "бронирование не найдено"
	msgNotAllowed  = "документ недоступен для текущего статуса бронирования"
)

type Handler struct {
	useCase GenerateDocumentUseCase
	logger  Logger
}

func NewHandler(useCase GenerateDocumentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings/{bookingId}/documents/{kind}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	req := &generateDocument.Request{
		BookingID: vars["bookingId"],
		Kind:      documents.Kind(vars["kind"]),
	}

	doc, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, generateDocument.ErrInvalidKind):
			h.logger.Warn("GET /admin/bookings/{id}/documents/{kind} - Invalid kind: %s", req.Kind)
			handlers.RespondBadRequest(w, msgInvalidKind)

		case errors.Is(err, generateDocument.ErrBookingNotFound):
			h.logger.Warn("GET /admin/bookings/{id}/documents/{kind} - Booking not found: booking_id=%s", req.BookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, generateDocument.ErrNotAllowed):
			h.logger.Warn("GET /admin/bookings/{id}/documents/{kind} - Not allowed: booking_id=%s, kind=%s", req.BookingID, req.Kind)
			handlers.RespondConflict(w, msgNotAllowed)

		default:
			h.logger.Error("GET /admin/bookings/{id}/documents/{kind} - Failed to generate document: booking_id=%s, error=%v",
				req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings/{id}/documents/{kind} - Document generated: booking_id=%s, number=%s",
		req.BookingID, doc.Number)
	handlers.RespondFile(w, doc.ContentType, doc.Filename, doc.Content)
}
