package booking_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/DLX-TourBookingService/internal/api/handlers"
	bookingWizard "github.com/m04kA/DLX-TourBookingService/internal/usecase/booking_wizard"
	createBooking "github.com/m04kA/DLX-TourBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты поездки, ожидается YYYY-MM-DD"
	msgSessionNotFound     = "сессия бронирования не найдена или истекла"
	msgInvalidAction       = "некорректное действие мастера"
	msgAlreadySubmitted    = "бронирование по этой сессии уже создано"
	msgNotCompleted        = "не все обязательные шаги заполнены"
	msgServiceNotFound     = "выбранная услуга больше не доступна в каталоге"
	msgServiceNotAvailable = "услуга недоступна для бронирования"
	msgCapacityExceeded    = "группа превышает вместимость услуги"
	msgSubmitFailed        = "не удалось создать бронирование, попробуйте ещё раз"
)

// Handler пошаговый мастер бронирования: создание сессии, действия, отправка
type Handler struct {
	useCase BookingWizardUseCase
	logger  Logger
}

func NewHandler(useCase BookingWizardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Start POST /api/v1/booking-sessions
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Start(r.Context())
	if err != nil {
		h.logger.Error("POST /booking-sessions - Failed to start session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /booking-sessions - Session started: session_id=%s", result.Session.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromResult(result))
}

// Get GET /api/v1/booking-sessions/{sessionId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Get(r.Context(), sessionID)
	if err != nil {
		h.respondError(w, "GET /booking-sessions/{id}", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromResult(result))
}

// Dispatch POST /api/v1/booking-sessions/{sessionId}/actions
func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req ActionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/actions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	action, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/actions - Failed to parse form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Dispatch(r.Context(), sessionID, action)
	if err != nil {
		h.respondError(w, "POST /booking-sessions/{id}/actions", sessionID, err)
		return
	}

	h.logger.Info("POST /booking-sessions/{id}/actions - Action applied: session_id=%s, action=%s, outcome=%s",
		sessionID, action.Type, result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, FromResult(result))
}

// Submit POST /api/v1/booking-sessions/{sessionId}/submit
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Submit(r.Context(), sessionID)
	if err != nil {
		h.respondError(w, "POST /booking-sessions/{id}/submit", sessionID, err)
		return
	}

	h.logger.Info("POST /booking-sessions/{id}/submit - Booking created: session_id=%s, booking_id=%s, reference=%s",
		sessionID, result.BookingID, result.Reference)
	handlers.RespondJSON(w, http.StatusCreated, FromSubmitResult(result))
}

func (h *Handler) respondError(w http.ResponseWriter, route, sessionID string, err error) {
	switch {
	case errors.Is(err, bookingWizard.ErrSessionNotFound):
		h.logger.Warn("%s - Session not found: session_id=%s", route, sessionID)
		handlers.RespondNotFound(w, msgSessionNotFound)

	case errors.Is(err, bookingWizard.ErrInvalidAction):
		h.logger.Warn("%s - Invalid action: session_id=%s, error=%v", route, sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidAction)

	case errors.Is(err, bookingWizard.ErrAlreadySubmitted):
		h.logger.Warn("%s - Already submitted: session_id=%s", route, sessionID)
		handlers.RespondConflict(w, msgAlreadySubmitted)

	case errors.Is(err, bookingWizard.ErrNotCompleted):
		h.logger.Warn("%s - Wizard not completed: session_id=%s, error=%v", route, sessionID, err)
		handlers.RespondBadRequest(w, msgNotCompleted)

	case errors.Is(err, createBooking.ErrServiceNotFound):
		h.logger.Warn("%s - Service missing from catalog: session_id=%s, error=%v", route, sessionID, err)
		handlers.RespondConflict(w, msgServiceNotFound)

	case errors.Is(err, createBooking.ErrServiceUnavailable):
		h.logger.Warn("%s - Service unavailable: session_id=%s, error=%v", route, sessionID, err)
		handlers.RespondConflict(w, msgServiceNotAvailable)

	case errors.Is(err, createBooking.ErrCapacityExceeded):
		h.logger.Warn("%s - Capacity exceeded: session_id=%s, error=%v", route, sessionID, err)
		handlers.RespondConflict(w, msgCapacityExceeded)

	case errors.Is(err, createBooking.ErrInvalidInput):
		h.logger.Warn("%s - Invalid booking data: session_id=%s, error=%v", route, sessionID, err)
		handlers.RespondBadRequest(w, msgNotCompleted)

	case errors.Is(err, bookingWizard.ErrSubmitFailed):
		h.logger.Error("%s - Submission failed: session_id=%s, error=%v", route, sessionID, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgSubmitFailed)

	default:
		h.logger.Error("%s - Failed: session_id=%s, error=%v", route, sessionID, err)
		handlers.RespondInternalError(w)
	}
}
