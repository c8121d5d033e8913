package booking_wizard

import (
	"context"
	"time"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
	"github.com/m04kA/DLX-TourBookingService/internal/usecase/create_booking"
	"github.com/m04kA/DLX-TourBookingService/internal/wizard"
)

// SessionStore интерфейс хранилища сессий мастера
type SessionStore interface {
	Save(ctx context.Context, session *wizard.Session) error
	Get(ctx context.Context, id string) (*wizard.Session, error)
	ClaimSubmit(ctx context.Context, id string) (bool, error)
	ReleaseSubmit(ctx context.Context, id string) error
}

// CatalogProvider интерфейс получения снимка каталога
type CatalogProvider interface {
	Snapshot(ctx context.Context) (domain.Catalog, error)
}

// PriceCalculator интерфейс расчёта стоимости
type PriceCalculator interface {
	ComputeBreakdown(catalog domain.Catalog, selections domain.Selections, trip domain.TripDetails) domain.PriceBreakdown
}

// BookingCreator интерфейс создания бронирования
type BookingCreator interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncWizardAction(action, outcome string)
	AddUnknownServiceRefs(n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
