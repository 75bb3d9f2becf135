package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-CourtBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*createBooking.Response)
	return resp, args.Error(1)
}

func doRequest(t *testing.T, uc *mockUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, logger.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := new(mockUseCase)
	booking := &domain.Booking{ID: "bk-1", CourtID: "c1", Status: domain.BookingStatusConfirmed}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createBooking.Request) bool {
		return r.CourtID == "c1" && r.StartTime == "18:00" && r.UserName == "Ann"
	})).Return(&createBooking.Response{Booking: booking}, nil)

	rec := doRequest(t, uc, `{"courtId":"c1","date":"2024-06-10","startTime":"18:00","endTime":"19:00","userName":"Ann"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got domain.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "bk-1", got.ID)
	uc.AssertExpectations(t)
}

func TestHandle_Waitlisted(t *testing.T) {
	uc := new(mockUseCase)
	entry := &domain.WaitlistEntry{ID: "wl-1", CourtID: "c1"}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&createBooking.Response{
		Waitlisted: true,
		Entry:      entry,
		Message:    "Slot unavailable (Court already booked for that slot), added to waitlist",
	}, nil)

	rec := doRequest(t, uc, `{"courtId":"c1","joinWaitlist":true}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	var got WaitlistedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Waitlisted)
	assert.Equal(t, "wl-1", got.Entry.ID)
	assert.Contains(t, got.Message, "added to waitlist")
}

func TestHandle_RejectionIsBadRequest(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, &createBooking.RejectionError{
		Err:     createBooking.ErrSlotNotAvailable,
		Message: "Court already booked for that slot",
	})

	rec := doRequest(t, uc, `{"courtId":"c1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Court already booked for that slot"}`, rec.Body.String())
}

func TestHandle_InternalErrorHidesDetails(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	rec := doRequest(t, uc, `{"courtId":"c1"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Something went wrong"}`, rec.Body.String())
}

func TestHandle_MalformedBody(t *testing.T) {
	uc := new(mockUseCase)

	rec := doRequest(t, uc, `{"courtId":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
