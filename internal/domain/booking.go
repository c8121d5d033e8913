package domain

import (
	"time"

	"github.com/m04kA/DLX-TourBookingService/internal/docref"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending: {PaymentPartial, PaymentPaid},
	PaymentPartial: {PaymentPaid, PaymentRefunded},
	PaymentPaid:    {PaymentRefunded},
}

// IsValid returns true for known booking statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo returns true if the status may change to next
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid returns true for known payment statuses
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPartial, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// CanTransitionTo returns true if the payment status may change to next
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking represents a confirmed booking request
type Booking struct {
	ID       string // uuid
	Customer Customer
	Trip     TripDetails

	// Denormalized price snapshot taken at booking time
	Services         []PriceLine
	Subtotal         float64
	GroupDiscount    float64
	ChildrenDiscount float64
	TotalAmount      float64

	SpecialRequests *string
	Status          BookingStatus
	PaymentStatus   PaymentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Reference returns the human readable booking reference (DLX-YYMMDD-NNN)
func (b *Booking) Reference() string {
	return b.documentRef(docref.KindBooking)
}

// InvoiceNumber returns the invoice number (INV-YYMMDD-NNN)
func (b *Booking) InvoiceNumber() string {
	return b.documentRef(docref.KindInvoice)
}

// TicketNumber returns the ticket number (TKT-YYMMDD-NNN)
func (b *Booking) TicketNumber() string {
	return b.documentRef(docref.KindTicket)
}

func (b *Booking) documentRef(kind docref.Kind) string {
	ref, err := docref.Derive(kind, b.ID, b.CreatedAt)
	if err != nil {
		return ""
	}
	return ref
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanIssueTicket returns true if a ticket may be issued for the booking
func (b *Booking) CanIssueTicket() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCompleted
}

// Breakdown rebuilds the price breakdown stored with the booking
func (b *Booking) Breakdown() PriceBreakdown {
	return PriceBreakdown{
		Lines:            b.Services,
		Subtotal:         b.Subtotal,
		GroupDiscount:    b.GroupDiscount,
		ChildrenDiscount: b.ChildrenDiscount,
		FinalTotal:       b.TotalAmount,
	}
}

// BookingsFilter filter for back-office booking listings
type BookingsFilter struct {
	Status          *BookingStatus
	PaymentStatus   *PaymentStatus
	StartDateFrom   *time.Time
	StartDateTo     *time.Time
	Search          *string // matches customer name or email
	IncludeInactive bool
	Limit           uint64
	Offset          uint64
}
