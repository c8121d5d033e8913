package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DLX-TourBookingService/internal/service/bookings"
	"github.com/m04kA/DLX-TourBookingService/internal/service/bookings/models"
	"github.com/m04kA/DLX-TourBookingService/pkg/logger"
)

type fakeService struct{ err error }

func (f *fakeService) GetByID(_ context.Context, id string) (*models.BookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: id, Reference: "DLX-250830-667", Status: "pending"}, nil
}

func serve(svc *fakeService) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/admin/bookings/{bookingId}", NewHandler(svc, logger.NewNop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/bookings/b-1", nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(&fakeService{})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reference":"DLX-250830-667"`)

	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: bookings.ErrBookingNotFound}).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: bookings.ErrInternal}).Code)
}
