package generate_document

import (
	"context"
	"time"

	"github.com/m04kA/DLX-TourBookingService/internal/documents"
	"github.com/m04kA/DLX-TourBookingService/internal/domain"
)

// BookingRepository интерфейс для работы с бронированиями
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

// Renderer интерфейс генерации PDF
type Renderer interface {
	Invoice(b *domain.Booking, issuedAt time.Time) (*documents.Document, error)
	Ticket(b *domain.Booking, issuedAt time.Time) (*documents.Document, error)
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncDocumentsGenerated(kind string)
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
