package list_services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DLX-TourBookingService/internal/service/catalog"
	"github.com/m04kA/DLX-TourBookingService/internal/service/catalog/models"
	"github.com/m04kA/DLX-TourBookingService/pkg/logger"
)

type fakeService struct {
	category *string
	err      error
}

func (f *fakeService) List(_ context.Context, category *string) (*models.ServiceListResponse, error) {
	f.category = category
	if f.err != nil {
		return nil, f.err
	}
	return &models.ServiceListResponse{Services: []models.ServiceResponse{{ID: "hotel-1", Category: "accommodation"}}}, nil
}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_FiltersByCategory(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "/api/v1/services?category=accommodation")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.category)
	assert.Equal(t, "accommodation", *svc.category)
	assert.Contains(t, rec.Body.String(), `"id":"hotel-1"`)
}

func TestHandle_WithoutCategory(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "/api/v1/services")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.category)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: catalog.ErrInvalidInput}, "/api/v1/services?category=spa").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: catalog.ErrInternal}, "/api/v1/services").Code)
}
