package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/service/bookings"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*domain.Booking)
	return resp, args.Error(1)
}

func serve(svc *mockService, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/bookings/{bookingId}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle_Found(t *testing.T) {
	svc := new(mockService)
	svc.On("GetByID", mock.Anything, "bk-1").Return(&domain.Booking{ID: "bk-1", CourtID: "c1"}, nil)

	rec := serve(svc, "/api/bookings/bk-1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"courtId":"c1"`)
}

func TestHandle_NotFound(t *testing.T) {
	svc := new(mockService)
	svc.On("GetByID", mock.Anything, "bk-9").Return(nil, bookings.ErrBookingNotFound)

	rec := serve(svc, "/api/bookings/bk-9")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Booking not found"}`, rec.Body.String())
}
