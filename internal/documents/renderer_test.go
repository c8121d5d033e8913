package documents

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
	"github.com/m04kA/DLX-TourBookingService/pkg/ptr"
)

func testBooking() *domain.Booking {
	start := time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:       "a1b2c3d4-0000-4000-8000-000000000000",
		Customer: domain.Customer{Name: "João Silva", Email: "joao@example.com", Phone: "+351 912 345 678", Country: "PT"},
		Trip:     domain.TripDetails{StartDate: &start, EndDate: &end, Adults: 8},
		Services: []domain.PriceLine{
			{ServiceID: "classic-island-package", Name: "Classic Island", Quantity: 1, UnitPrice: 100, LineTotal: 800, IsPackage: true},
		},
		Subtotal:        800,
		GroupDiscount:   80,
		TotalAmount:     720,
		SpecialRequests: ptr.Ptr("Window seats"),
		Status:          domain.StatusConfirmed,
		PaymentStatus:   domain.PaymentPaid,
		CreatedAt:       time.Date(2025, 8, 30, 11, 0, 0, 0, time.UTC),
	}
}

func newTestRenderer() *Renderer {
	return NewRenderer(Issuer{Name: "DLX Tours", Email: "office@dlx.example"}).WithoutCompression()
}

func TestInvoice(t *testing.T) {
	doc, err := newTestRenderer().Invoice(testBooking(), time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, KindInvoice, doc.Kind)
	assert.Equal(t, "INV-250830-667", doc.Number)
	assert.Equal(t, "invoice-INV-250830-667.pdf", doc.Filename)
	assert.True(t, bytes.HasPrefix(doc.Content, []byte("%PDF")))
	assert.True(t, bytes.Contains(doc.Content, []byte("INV-250830-667")))
	assert.True(t, bytes.Contains(doc.Content, []byte("DLX-250830-667")))
	assert.True(t, bytes.Contains(doc.Content, []byte("720.00 EUR")))
	assert.True(t, bytes.Contains(doc.Content, []byte("-80.00 EUR")))
}

func TestTicket(t *testing.T) {
	doc, err := newTestRenderer().Ticket(testBooking(), time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, "TKT-250830-667", doc.Number)
	assert.Equal(t, "ticket-TKT-250830-667.pdf", doc.Filename)
	assert.True(t, bytes.Contains(doc.Content, []byte("2025-09-05 - 2025-09-12")))
}

func TestRender_BadIdentifier(t *testing.T) {
	b := testBooking()
	b.ID = "zz-not-hex"

	_, err := newTestRenderer().Invoice(b, time.Now())
	assert.ErrorIs(t, err, ErrMissingNumber)

	_, err = newTestRenderer().Ticket(b, time.Now())
	assert.ErrorIs(t, err, ErrMissingNumber)
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{amount: 0, want: "0.00 EUR"},
		{amount: 720, want: "720.00 EUR"},
		{amount: 1234.5, want: "1,234.50 EUR"},
		{amount: 1234567.891, want: "1,234,567.89 EUR"},
		{amount: -15.25, want: "-15.25 EUR"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.amount, "EUR"))
		})
	}
}

func TestKind_IsValid(t *testing.T) {
	assert.True(t, KindInvoice.IsValid())
	assert.True(t, KindTicket.IsValid())
	assert.False(t, Kind("receipt").IsValid())
}
