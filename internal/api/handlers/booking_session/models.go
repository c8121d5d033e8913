package booking_session

import (
	"time"

	"github.com/m04kA/DLX-TourBookingService/internal/api/handlers"
	"github.com/m04kA/DLX-TourBookingService/internal/domain"
	bookingWizard "github.com/m04kA/DLX-TourBookingService/internal/usecase/booking_wizard"
	"github.com/m04kA/DLX-TourBookingService/internal/wizard"
)

// FormRequest данные формы мастера в HTTP запросе (даты в формате YYYY-MM-DD)
type FormRequest struct {
	Trip            handlers.TripRequest      `json:"trip"`
	Customer        domain.Customer           `json:"customer"`
	Accommodation   wizard.AccommodationPrefs `json:"accommodation"`
	Transport       wizard.TransportPrefs     `json:"transport"`
	Guide           wizard.GuidePrefs         `json:"guide"`
	SpecialRequests string                    `json:"specialRequests,omitempty"`
}

// ActionRequest действие мастера
type ActionRequest struct {
	Type      string       `json:"type"` // next|back|jump|update_form|select|deselect|set_quantity
	Index     *int         `json:"index,omitempty"`
	Form      *FormRequest `json:"form,omitempty"`
	ServiceID string       `json:"serviceId,omitempty"`
	Quantity  int          `json:"quantity,omitempty"`
}

// FormResponse данные формы в HTTP ответе
type FormResponse struct {
	Trip            handlers.TripResponse     `json:"trip"`
	Customer        domain.Customer           `json:"customer"`
	Accommodation   wizard.AccommodationPrefs `json:"accommodation"`
	Transport       wizard.TransportPrefs     `json:"transport"`
	Guide           wizard.GuidePrefs         `json:"guide"`
	SpecialRequests string                    `json:"specialRequests,omitempty"`
}

// SessionResponse состояние мастера с актуальным расчётом
type SessionResponse struct {
	SessionID string `json:"sessionId"`
	wizard.View
	Outcome          string                     `json:"outcome,omitempty"`
	Form             FormResponse               `json:"form"`
	Selections       domain.Selections          `json:"selections"`
	Quote            handlers.BreakdownResponse `json:"quote"`
	BookingID        string                     `json:"bookingId,omitempty"`
	BookingReference string                     `json:"bookingReference,omitempty"`
}

// SubmitResponse созданное из мастера бронирование
type SubmitResponse struct {
	SessionID     string                     `json:"sessionId"`
	BookingID     string                     `json:"bookingId"`
	Reference     string                     `json:"reference"`
	Status        string                     `json:"status"`
	PaymentStatus string                     `json:"paymentStatus"`
	Breakdown     handlers.BreakdownResponse `json:"breakdown"`
	CreatedAt     string                     `json:"createdAt"`
}

// ToDomain конвертирует HTTP действие в действие мастера
func (r *ActionRequest) ToDomain() (wizard.Action, error) {
	action := wizard.Action{
		Type:      wizard.ActionType(r.Type),
		Index:     r.Index,
		ServiceID: r.ServiceID,
		Quantity:  r.Quantity,
	}

	if r.Form != nil {
		form, err := r.Form.ToDomain()
		if err != nil {
			return action, err
		}
		action.Form = &form
	}

	return action, nil
}

// ToDomain конвертирует форму с парсингом дат
func (r *FormRequest) ToDomain() (wizard.FormData, error) {
	trip, err := r.Trip.ToDomain()
	if err != nil {
		return wizard.FormData{}, err
	}

	return wizard.FormData{
		Trip:            trip,
		Customer:        r.Customer,
		Accommodation:   r.Accommodation,
		Transport:       r.Transport,
		Guide:           r.Guide,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromResult конвертирует результат use case в HTTP response
func FromResult(res *bookingWizard.Result) *SessionResponse {
	state := res.Session.State
	return &SessionResponse{
		SessionID: res.Session.ID,
		View:      res.View,
		Outcome:   string(res.Outcome),
		Form: FormResponse{
			Trip:            handlers.FromDomainTrip(state.Form.Trip),
			Customer:        state.Form.Customer,
			Accommodation:   state.Form.Accommodation,
			Transport:       state.Form.Transport,
			Guide:           state.Form.Guide,
			SpecialRequests: state.Form.SpecialRequests,
		},
		Selections:       state.Selections,
		Quote:            handlers.FromDomainBreakdown(res.Quote),
		BookingID:        res.Session.BookingID,
		BookingReference: res.Session.BookingReference,
	}
}

// FromSubmitResult конвертирует результат отправки в HTTP response
func FromSubmitResult(res *bookingWizard.SubmitResult) *SubmitResponse {
	return &SubmitResponse{
		SessionID:     res.SessionID,
		BookingID:     res.BookingID,
		Reference:     res.Reference,
		Status:        string(res.Status),
		PaymentStatus: string(res.PaymentStatus),
		Breakdown:     handlers.FromDomainBreakdown(res.Breakdown),
		CreatedAt:     res.CreatedAt.Format(time.RFC3339),
	}
}
