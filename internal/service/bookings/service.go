package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
	bookingRepo "github.com/m04kA/DLX-TourBookingService/internal/infra/storage/booking"
	"github.com/m04kA/DLX-TourBookingService/internal/service/bookings/models"
)

// Service сервис back-office для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией и пагинацией
//
// Примеры использования:
// - Все активные бронирования: List(ctx, &ListBookingsRequest{})
// - Ожидающие подтверждения: Status = "pending"
// - Поездки за период: StartDateFrom и StartDateTo
// - Поиск клиента: Search = "souza"
// - Включая отменённые: IncludeInactive = true
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	total, err := s.bookingRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("List: count error: %v", err)
		return nil, fmt.Errorf("%w: List - count error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d of %d bookings", len(bookings), total)

	resp := models.FromDomainBookingList(bookings)
	resp.Total = total
	resp.Limit = filter.Limit
	resp.Offset = filter.Offset
	return resp, nil
}

// UpdateStatus меняет статус бронирования и/или статус оплаты
// Переходы проверяются по таблицам переходов domain; строка блокируется на время проверки
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%s status=%v payment=%v", id, req.Status, req.PaymentStatus)

	// 1. Валидируем запрос
	status, payment, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid request for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var result *domain.Booking

	// 2. Проверяем переход и обновляем в одной транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "UpdateStatus", id)
		if err != nil {
			return err
		}

		// 2.1. Проверяем допустимость переходов
		if status != nil && *status != booking.Status && !booking.Status.CanTransitionTo(*status) {
			s.logger.Warn("UpdateStatus: booking id=%s cannot move from %s to %s", id, booking.Status, *status)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, *status)
		}
		if payment != nil && *payment != booking.PaymentStatus && !booking.PaymentStatus.CanTransitionTo(*payment) {
			s.logger.Warn("UpdateStatus: booking id=%s payment cannot move from %s to %s", id, booking.PaymentStatus, *payment)
			return fmt.Errorf("%w: payment %s -> %s", ErrInvalidTransition, booking.PaymentStatus, *payment)
		}

		// 2.2. Сохраняем
		if err := s.bookingRepo.UpdateStatus(txCtx, id, status, payment); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if status != nil {
			booking.Status = *status
		}
		if payment != nil {
			booking.PaymentStatus = *payment
		}
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: booking id=%s now status=%s payment=%s", id, result.Status, result.PaymentStatus)
	return models.FromDomainBooking(result), nil
}

// getBooking загружает бронирование, не отправляя в БД заведомо некорректный UUID
func (s *Service) getBooking(ctx context.Context, op, id string) (*domain.Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("%s: malformed booking id=%q", op, id)
		return nil, ErrBookingNotFound
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return booking, nil
}
