package update_booking_status

import (
	"github.com/m04kA/DLX-TourBookingService/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status        *string `json:"status,omitempty"`        // pending|confirmed|completed|cancelled
	PaymentStatus *string `json:"paymentStatus,omitempty"` // pending|partial|paid|refunded
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		Status:        r.Status,
		PaymentStatus: r.PaymentStatus,
	}
}
