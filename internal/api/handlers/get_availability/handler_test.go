package get_availability

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/service/availability"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetAvailability(ctx context.Context, w availability.Window) (*availability.Availability, error) {
	args := m.Called(ctx, w)
	resp, _ := args.Get(0).(*availability.Availability)
	return resp, args.Error(1)
}

func get(svc *mockService, query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/availability?"+query, nil))
	return rec
}

func TestHandle_MissingParams(t *testing.T) {
	svc := new(mockService)

	rec := get(svc, "date=2024-06-10&startTime=18:00")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"date, startTime, endTime are required"}`, rec.Body.String())
	svc.AssertNotCalled(t, "GetAvailability", mock.Anything, mock.Anything)
}

func TestHandle_InvalidWindow(t *testing.T) {
	svc := new(mockService)
	svc.On("GetAvailability", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: startTime must be before endTime", availability.ErrInvalidInput))

	rec := get(svc, "date=2024-06-10&startTime=19:00&endTime=18:00")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"startTime must be before endTime"}`, rec.Body.String())
}

func TestHandle_OK(t *testing.T) {
	svc := new(mockService)
	window := availability.Window{Date: "2024-06-10", StartTime: "18:00", EndTime: "19:00"}
	svc.On("GetAvailability", mock.Anything, window).Return(&availability.Availability{
		Courts: []domain.CourtAvailability{{Court: domain.Court{ID: "c1"}, Available: true}},
	}, nil)

	rec := get(svc, "date=2024-06-10&startTime=18:00&endTime=19:00")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"courts"`)
	svc.AssertExpectations(t)
}
