package booking_wizard

import (
	"time"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
	"github.com/m04kA/DLX-TourBookingService/internal/wizard"
)

// Result состояние сессии после операции
type Result struct {
	Session *wizard.Session       // Сохранённая сессия
	View    wizard.View           // Шаги, прогресс, флаги
	Quote   domain.PriceBreakdown // Округлённый расчёт по текущему выбору
	Outcome wizard.Outcome        // Результат действия (только для Dispatch)
}

// SubmitResult результат отправки мастера
type SubmitResult struct {
	SessionID     string
	BookingID     string
	Reference     string
	Status        domain.BookingStatus
	PaymentStatus domain.PaymentStatus
	Breakdown     domain.PriceBreakdown
	CreatedAt     time.Time
}
