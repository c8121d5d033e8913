package calculate_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/DLX-TourBookingService/internal/api/handlers"
	calculateQuote "github.com/m04kA/DLX-TourBookingService/internal/usecase/calculate_quote"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidQuote       = "некорректные параметры расчёта"
)

type Handler struct {
	useCase CalculateQuoteUseCase
	logger  Logger
}

func NewHandler(useCase CalculateQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, calculateQuote.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid quote request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuote)

		default:
			h.logger.Error("POST /quotes - Failed to calculate quote: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote calculated: services=%d, total=%.2f", len(req.Selections), result.Breakdown.FinalTotal)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
