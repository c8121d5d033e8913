package generate_document

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/DLX-TourBookingService/internal/documents"
	"github.com/m04kA/DLX-TourBookingService/internal/domain"
	bookingRepo "github.com/m04kA/DLX-TourBookingService/internal/infra/storage/booking"
)

// UseCase use case генерации счёта и билета
type UseCase struct {
	bookingRepo  BookingRepository
	renderer     Renderer
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	renderer Renderer,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		renderer:     renderer,
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

// Execute генерирует документ по бронированию
// Счёт выдаётся для любого неотменённого бронирования, билет только для подтверждённого или завершённого
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateDocument: booking=%s kind=%s", req.BookingID, req.Kind)

	// 1. Валидация запроса
	if !req.Kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, req.Kind)
	}
	if _, err := uuid.Parse(req.BookingID); err != nil {
		uc.logger.Warn("GenerateDocument: malformed booking id=%q", req.BookingID)
		return nil, ErrBookingNotFound
	}

	// 2. Загружаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("GenerateDocument: booking=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("GenerateDocument: failed to load booking=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to load booking: %v", ErrInternal, err)
	}

	// 3. Проверяем, что статус допускает выпуск документа
	if err := checkAllowed(booking, req.Kind); err != nil {
		uc.logger.Warn("GenerateDocument: booking=%s status=%s: %v", booking.ID, booking.Status, err)
		return nil, err
	}

	// 4. Рендерим PDF
	var doc *documents.Document
	issuedAt := uc.timeProvider.Now()
	switch req.Kind {
	case documents.KindInvoice:
		doc, err = uc.renderer.Invoice(booking, issuedAt)
	case documents.KindTicket:
		doc, err = uc.renderer.Ticket(booking, issuedAt)
	}
	if err != nil {
		uc.logger.Error("GenerateDocument: failed to render %s for booking=%s: %v", req.Kind, booking.ID, err)
		return nil, fmt.Errorf("%w: render %s: %v", ErrInternal, req.Kind, err)
	}

	uc.metrics.IncDocumentsGenerated(string(req.Kind))
	uc.logger.Info("GenerateDocument: rendered %s %s (%d bytes)", req.Kind, doc.Number, len(doc.Content))

	return &Response{
		Number:      doc.Number,
		Filename:    doc.Filename,
		ContentType: contentTypePDF,
		Content:     doc.Content,
	}, nil
}

func checkAllowed(b *domain.Booking, kind documents.Kind) error {
	switch kind {
	case documents.KindInvoice:
		if b.IsCancelled() {
			return fmt.Errorf("%w: invoice for cancelled booking", ErrNotAllowed)
		}
	case documents.KindTicket:
		if !b.CanIssueTicket() {
			return fmt.Errorf("%w: ticket requires confirmed or completed booking", ErrNotAllowed)
		}
	}
	return nil
}
