package create_booking

import (
	"time"

	"github.com/m04kA/DLX-TourBookingService/internal/api/handlers"
	"github.com/m04kA/DLX-TourBookingService/internal/domain"
	createBooking "github.com/m04kA/DLX-TourBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Customer        domain.Customer      `json:"customer"`
	Trip            handlers.TripRequest `json:"trip"`
	Selections      domain.Selections    `json:"selections"`
	SpecialRequests *string              `json:"specialRequests,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string                     `json:"id"`
	Reference     string                     `json:"reference"` // "DLX-250830-667"
	Status        string                     `json:"status"`
	PaymentStatus string                     `json:"paymentStatus"`
	Breakdown     handlers.BreakdownResponse `json:"breakdown"`
	CreatedAt     string                     `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом дат)
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	trip, err := r.Trip.ToDomain()
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Customer:        r.Customer,
		Trip:            trip,
		Selections:      r.Selections,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		Reference:     resp.Reference,
		Status:        string(resp.Status),
		PaymentStatus: string(resp.PaymentStatus),
		Breakdown:     handlers.FromDomainBreakdown(resp.Breakdown),
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
