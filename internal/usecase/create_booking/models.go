package create_booking

import (
	"time"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Customer        domain.Customer    // Контактные данные клиента
	Trip            domain.TripDetails // Даты и состав группы
	Selections      domain.Selections  // Выбранные услуги
	SpecialRequests *string            // Пожелания (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string                // UUID бронирования
	Reference     string                // Номер бронирования "DLX-YYMMDD-NNN"
	Status        domain.BookingStatus  // Всегда pending
	PaymentStatus domain.PaymentStatus  // Всегда pending
	Breakdown     domain.PriceBreakdown // Округлённый расчёт стоимости
	CreatedAt     time.Time             // Время создания
}
