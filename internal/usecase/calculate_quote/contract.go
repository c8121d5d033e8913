package calculate_quote

import (
	"context"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Service, error)
}

// PriceCalculator интерфейс расчёта стоимости
type PriceCalculator interface {
	ComputeBreakdown(catalog domain.Catalog, selections domain.Selections, trip domain.TripDetails) domain.PriceBreakdown
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncQuotesCalculated()
	AddUnknownServiceRefs(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
