package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
	createBooking "github.com/m04kA/DLX-TourBookingService/internal/usecase/create_booking"
	"github.com/m04kA/DLX-TourBookingService/pkg/logger"
)

type fakeUseCase struct {
	req *createBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &createBooking.Response{
		ID:            "a1b2c3d4-0000-4000-8000-000000000000",
		Reference:     "DLX-250830-667",
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentPending,
		Breakdown:     domain.PriceBreakdown{Subtotal: 800, GroupDiscount: 80, FinalTotal: 720},
		CreatedAt:     time.Date(2025, 8, 30, 11, 0, 0, 0, time.UTC),
	}, nil
}

const validBody = `{
	"customer": {"name": "Ana Souza", "email": "ana@example.com", "phone": "+351912345678"},
	"trip": {"startDate": "2025-09-05", "adults": 8},
	"selections": {"classic-island-package": {"quantity": 1}}
}`

func serve(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "DLX-250830-667", resp.Reference)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 720.0, resp.Breakdown.FinalTotal)
	assert.Equal(t, 80.0, resp.Breakdown.TotalDiscount)

	require.NotNil(t, uc.req)
	require.NotNil(t, uc.req.Trip.StartDate)
	assert.Equal(t, "2025-09-05", uc.req.Trip.StartDate.Format(domain.DateFormat))
	assert.Equal(t, 8, uc.req.Trip.Adults)
}

func TestHandle_BadRequests(t *testing.T) {
	rec := serve(&fakeUseCase{}, `{"customer":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(&fakeUseCase{}, `{"trip": {"startDate": "05/09/2025", "adults": 2}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: createBooking.ErrInvalidInput, want: http.StatusBadRequest},
		{err: createBooking.ErrServiceNotFound, want: http.StatusNotFound},
		{err: createBooking.ErrServiceUnavailable, want: http.StatusConflict},
		{err: createBooking.ErrCapacityExceeded, want: http.StatusConflict},
		{err: createBooking.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := serve(&fakeUseCase{err: fmt.Errorf("%w: details", tt.err)}, validBody)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
