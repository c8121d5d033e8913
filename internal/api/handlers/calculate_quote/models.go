package calculate_quote

import (
	"github.com/m04kA/DLX-TourBookingService/internal/api/handlers"
	"github.com/m04kA/DLX-TourBookingService/internal/domain"
	calculateQuote "github.com/m04kA/DLX-TourBookingService/internal/usecase/calculate_quote"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	Selections domain.Selections `json:"selections"` // {"boat": {"quantity": 2}}
	Adults     int               `json:"adults"`
	Children   int               `json:"children"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	handlers.BreakdownResponse
	Travelers int `json:"travelers"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() *calculateQuote.Request {
	return &calculateQuote.Request{
		Selections: r.Selections,
		Adults:     r.Adults,
		Children:   r.Children,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculateQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		BreakdownResponse: handlers.FromDomainBreakdown(resp.Breakdown),
		Travelers:         resp.Travelers,
	}
}
