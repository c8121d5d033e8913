package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/DLX-TourBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/DLX-TourBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты поездки, ожидается YYYY-MM-DD"
	msgInvalidInput        = "некорректные данные бронирования"
	msgServiceNotFound     = "услуга не найдена"
	msgServiceNotAvailable = "услуга недоступна для бронирования"
	msgCapacityExceeded    = "группа превышает вместимость услуги"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: email=%s, error=%v", req.Customer.Email, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: %v", err)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrServiceUnavailable):
			h.logger.Warn("POST /bookings - Service unavailable: %v", err)
			handlers.RespondConflict(w, msgServiceNotAvailable)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: %v", err)
			handlers.RespondConflict(w, msgCapacityExceeded)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: email=%s, error=%v", req.Customer.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, reference=%s",
		result.ID, result.Reference)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
