package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
	"github.com/m04kA/DLX-TourBookingService/internal/pricing"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	pricer       PriceCalculator
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	pricer PriceCalculator,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		pricer:       pricer,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute создаёт бронирование со статусом pending и оплатой pending
// Каталог читается в той же транзакции, что и вставка, чтобы цена считалась по актуальным данным
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, services=%v, adults=%d, children=%d",
		req.Customer.Email, req.Selections.IDs(), req.Trip.Adults, req.Trip.Children)

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Выполняем операции с БД в транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем выбранные услуги из каталога
		services, err := uc.catalogRepo.GetByIDs(txCtx, req.Selections.IDs())
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load catalog: %v", err)
			return fmt.Errorf("%w: failed to load catalog: %v", ErrInternal, err)
		}
		catalog := domain.NewCatalog(services)

		// 2.2. Проверяем услуги: существуют, активны, вмещают группу
		if err := validateServices(catalog, req.Selections, req.Trip.Travelers()); err != nil {
			uc.logger.Warn("CreateBooking: services validation failed: %v", err)
			return err
		}

		// 2.3. Считаем стоимость; суммы сохраняются округлёнными до копеек
		breakdown := pricing.RoundBreakdown(uc.pricer.ComputeBreakdown(catalog, req.Selections, req.Trip))

		// 2.4. Создаем бронирование со снимком цен
		booking := &domain.Booking{
			Customer:         req.Customer,
			Trip:             req.Trip,
			Services:         breakdown.Lines,
			Subtotal:         breakdown.Subtotal,
			GroupDiscount:    breakdown.GroupDiscount,
			ChildrenDiscount: breakdown.ChildrenDiscount,
			TotalAmount:      breakdown.FinalTotal,
			SpecialRequests:  req.SpecialRequests,
			Status:           domain.StatusPending,
			PaymentStatus:    domain.PaymentPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.IncBookingsCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%s ref=%s total=%.2f",
		result.ID, result.Reference(), result.TotalAmount)

	return &Response{
		ID:            result.ID,
		Reference:     result.Reference(),
		Status:        result.Status,
		PaymentStatus: result.PaymentStatus,
		Breakdown:     result.Breakdown(),
		CreatedAt:     result.CreatedAt,
	}, nil
}
