package update_booking_status

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DLX-TourBookingService/internal/service/bookings"
	"github.com/m04kA/DLX-TourBookingService/internal/service/bookings/models"
	"github.com/m04kA/DLX-TourBookingService/pkg/logger"
)

type fakeService struct {
	id  string
	req *models.UpdateStatusRequest
	err error
}

func (f *fakeService) UpdateStatus(_ context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	f.id, f.req = id, req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: id, Status: "confirmed", PaymentStatus: "paid"}, nil
}

func serve(svc *fakeService, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/admin/bookings/{bookingId}/status", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPatch)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/admin/bookings/b-1/status", strings.NewReader(body)))
	return rec
}

func TestHandle_Updates(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, `{"status": "confirmed", "paymentStatus": "paid"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "b-1", svc.id)
	require.NotNil(t, svc.req.Status)
	assert.Equal(t, "confirmed", *svc.req.Status)
	assert.Equal(t, "paid", *svc.req.PaymentStatus)
	assert.Contains(t, rec.Body.String(), `"paymentStatus":"paid"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: bookings.ErrBookingNotFound, want: http.StatusNotFound},
		{name: "invalid", err: fmt.Errorf("%w: bad", bookings.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "transition", err: fmt.Errorf("%w: cancelled -> confirmed", bookings.ErrInvalidTransition), want: http.StatusConflict},
		{name: "internal", err: bookings.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, `{"status": "confirmed"}`)
			assert.Equal(t, tt.want, rec.Code)
		})
	}

	rec := serve(&fakeService{}, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
