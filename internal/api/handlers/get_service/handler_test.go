package get_service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DLX-TourBookingService/internal/service/catalog"
	"github.com/m04kA/DLX-TourBookingService/internal/service/catalog/models"
	"github.com/m04kA/DLX-TourBookingService/pkg/logger"
)

type fakeService struct{ err error }

func (f *fakeService) GetByID(_ context.Context, id string) (*models.ServiceResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ServiceResponse{ID: id, Name: "Cape Verde Package", BasePrice: 450}, nil
}

func serve(svc *fakeService) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/services/{serviceId}", NewHandler(svc, logger.NewNop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services/package-1", nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(&fakeService{})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"package-1"`)

	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: catalog.ErrServiceNotFound}).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: catalog.ErrInternal}).Code)
}
