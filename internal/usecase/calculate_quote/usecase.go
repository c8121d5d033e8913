package calculate_quote

import (
	"context"
	"fmt"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
	"github.com/m04kA/DLX-TourBookingService/internal/pricing"
)

// UseCase use case для расчёта стоимости без создания бронирования
type UseCase struct {
	catalogRepo CatalogRepository
	pricer      PriceCalculator
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	pricer PriceCalculator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo: catalogRepo,
		pricer:      pricer,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет расчёт стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculateQuote: services=%v, adults=%d, children=%d",
		req.Selections.IDs(), req.Adults, req.Children)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CalculateQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем выбранные услуги
	services, err := uc.catalogRepo.GetByIDs(ctx, req.Selections.IDs())
	if err != nil {
		uc.logger.Error("CalculateQuote: failed to load catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to load catalog: %v", ErrInternal, err)
	}

	// 3. Считаем стоимость
	trip := domain.TripDetails{Adults: req.Adults, Children: req.Children}
	breakdown := uc.pricer.ComputeBreakdown(domain.NewCatalog(services), req.Selections, trip)

	// 4. Неизвестные услуги не входят в сумму, но не теряются молча
	if breakdown.HasUnknownServices() {
		uc.logger.Warn("CalculateQuote: services not in catalog excluded from total: %v", breakdown.UnknownServiceIDs)
		uc.metrics.AddUnknownServiceRefs(len(breakdown.UnknownServiceIDs))
	}

	uc.metrics.IncQuotesCalculated()

	return &Response{
		Breakdown: pricing.RoundBreakdown(breakdown),
		Travelers: trip.Travelers(),
	}, nil
}
