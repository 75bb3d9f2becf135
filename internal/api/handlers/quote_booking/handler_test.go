package quote_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/service/bookings"
	"github.com/m04kA/SMC-CourtBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Quote(ctx context.Context, req *models.QuoteRequest) (*domain.PriceBreakdown, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*domain.PriceBreakdown)
	return resp, args.Error(1)
}

func post(svc *mockService, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/bookings/quote", strings.NewReader(body)))
	return rec
}

func TestHandle_Quote(t *testing.T) {
	svc := new(mockService)
	svc.On("Quote", mock.Anything, &models.QuoteRequest{CourtID: "c1", Date: "2024-06-10", StartTime: "18:00", EndTime: "19:00"}).
		Return(&domain.PriceBreakdown{Hours: 1, Court: 25, BaseTotal: 25, Adjustments: 7.5, Total: 32.5}, nil)

	rec := post(svc, `{"courtId":"c1","date":"2024-06-10","startTime":"18:00","endTime":"19:00"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got domain.PriceBreakdown
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.InDelta(t, 32.5, got.Total, 1e-9)
}

func TestHandle_InvalidQuote(t *testing.T) {
	svc := new(mockService)
	svc.On("Quote", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: startTime must be HH:MM", bookings.ErrInvalidInput))

	rec := post(svc, `{"startTime":"6pm","endTime":"19:00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"startTime must be HH:MM"}`, rec.Body.String())
}

func TestHandle_CalculationFailureIsBadRequest(t *testing.T) {
	svc := new(mockService)
	svc.On("Quote", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: Quote - calculate: storage down", bookings.ErrInternal))

	rec := post(svc, `{"startTime":"18:00","endTime":"19:00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotContains(t, rec.Body.String(), "storage down")
}
