package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidPaymentStatus возвращается при некорректном статусе оплаты
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrEmptyUpdate возвращается, когда в запросе нет ни статуса, ни статуса оплаты
	ErrEmptyUpdate = errors.New("status or paymentStatus is required")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Status          *string `json:"status,omitempty"`
	PaymentStatus   *string `json:"paymentStatus,omitempty"`
	StartDateFrom   *string `json:"startDateFrom,omitempty"` // "2025-09-01"
	StartDateTo     *string `json:"startDateTo,omitempty"`   // "2025-09-30"
	Search          *string `json:"search,omitempty"`        // Имя или email клиента
	IncludeInactive bool    `json:"includeInactive,omitempty"`
	Limit           uint64  `json:"limit,omitempty"`
	Offset          uint64  `json:"offset,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Search:          r.Search,
		IncludeInactive: r.IncludeInactive,
		Limit:           r.Limit,
		Offset:          r.Offset,
	}

	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}
	filter.Limit = min(filter.Limit, MaxListLimit)

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.PaymentStatus != nil {
		payment, err := ToDomainPaymentStatus(*r.PaymentStatus)
		if err != nil {
			return filter, err
		}
		filter.PaymentStatus = &payment
	}

	var err error
	if filter.StartDateFrom, err = parseDate(r.StartDateFrom); err != nil {
		return filter, err
	}
	if filter.StartDateTo, err = parseDate(r.StartDateTo); err != nil {
		return filter, err
	}

	return filter, nil
}

// UpdateStatusRequest запрос на изменение статуса бронирования и/или оплаты
type UpdateStatusRequest struct {
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
}

// ToDomain валидирует и конвертирует статусы
func (r *UpdateStatusRequest) ToDomain() (*domain.BookingStatus, *domain.PaymentStatus, error) {
	if r.Status == nil && r.PaymentStatus == nil {
		return nil, nil, ErrEmptyUpdate
	}

	var (
		status  *domain.BookingStatus
		payment *domain.PaymentStatus
	)

	if r.Status != nil {
		s, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return nil, nil, err
		}
		status = &s
	}

	if r.PaymentStatus != nil {
		p, err := ToDomainPaymentStatus(*r.PaymentStatus)
		if err != nil {
			return nil, nil, err
		}
		payment = &p
	}

	return status, payment, nil
}

// Response модели

// PriceLineResponse строка расчёта стоимости
type PriceLineResponse struct {
	ServiceID string  `json:"serviceId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
	IsPackage bool    `json:"isPackage"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string `json:"id"`
	Reference     string `json:"reference"`     // "DLX-250830-667"
	InvoiceNumber string `json:"invoiceNumber"` // "INV-250830-667"

	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerCountry string `json:"customerCountry,omitempty"`

	StartDate string  `json:"startDate"`         // "2025-09-05"
	EndDate   *string `json:"endDate,omitempty"` // "2025-09-12"
	Adults    int     `json:"adults"`
	Children  int     `json:"children"`

	Services         []PriceLineResponse `json:"services"`
	Subtotal         float64             `json:"subtotal"`
	GroupDiscount    float64             `json:"groupDiscount"`
	ChildrenDiscount float64             `json:"childrenDiscount"`
	TotalAmount      float64             `json:"totalAmount"`

	SpecialRequests *string `json:"specialRequests,omitempty"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    uint64            `json:"total"`
	Limit    uint64            `json:"limit"`
	Offset   uint64            `json:"offset"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:               b.ID,
		Reference:        b.Reference(),
		InvoiceNumber:    b.InvoiceNumber(),
		CustomerName:     b.Customer.Name,
		CustomerEmail:    b.Customer.Email,
		CustomerPhone:    b.Customer.Phone,
		CustomerCountry:  b.Customer.Country,
		Adults:           b.Trip.Adults,
		Children:         b.Trip.Children,
		Services:         FromDomainPriceLines(b.Services),
		Subtotal:         b.Subtotal,
		GroupDiscount:    b.GroupDiscount,
		ChildrenDiscount: b.ChildrenDiscount,
		TotalAmount:      b.TotalAmount,
		SpecialRequests:  b.SpecialRequests,
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}

	if b.Trip.StartDate != nil {
		resp.StartDate = b.Trip.StartDate.Format(domain.DateFormat)
	}
	if b.Trip.EndDate != nil {
		end := b.Trip.EndDate.Format(domain.DateFormat)
		resp.EndDate = &end
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if item := FromDomainBooking(booking); item != nil {
			resp.Bookings = append(resp.Bookings, *item)
		}
	}

	return resp
}

// FromDomainPriceLines конвертирует строки расчёта
func FromDomainPriceLines(lines []domain.PriceLine) []PriceLineResponse {
	out := make([]PriceLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, PriceLineResponse(l))
	}
	return out
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s, nil
}

// ToDomainPaymentStatus конвертирует строку в domain.PaymentStatus с валидацией
func ToDomainPaymentStatus(status string) (domain.PaymentStatus, error) {
	s := domain.PaymentStatus(status)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, status)
	}
	return s, nil
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateFormat, *value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, *value)
	}
	return &t, nil
}
