package admin_logout

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/DLX-TourBookingService/internal/api/middleware"
	"github.com/m04kA/DLX-TourBookingService/internal/auth"
	"github.com/m04kA/DLX-TourBookingService/pkg/logger"
)

type fakeAuthenticator struct {
	revoked []string
	err     error
}

func (f *fakeAuthenticator) Verify(_ context.Context, _ string) (*auth.Claims, error) {
	return &auth.Claims{Role: auth.RoleAdmin}, nil
}

func (f *fakeAuthenticator) Logout(_ context.Context, token string) error {
	if f.err != nil {
		return f.err
	}
	f.revoked = append(f.revoked, token)
	return nil
}

func serve(a *fakeAuthenticator, withAuth bool) *httptest.ResponseRecorder {
	var h http.Handler = http.HandlerFunc(NewHandler(a, logger.NewNop()).Handle)
	if withAuth {
		h = middleware.AdminAuth(a, logger.NewNop())(h)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/logout", nil)
	req.Header.Set("Authorization", "Bearer jwt-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandle_RevokesToken(t *testing.T) {
	a := &fakeAuthenticator{}

	rec := serve(a, true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"jwt-token"}, a.revoked)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, serve(&fakeAuthenticator{}, false).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeAuthenticator{err: errors.New("redis down")}, true).Code)
}
