package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-CourtBooking/internal/integrations/eventbus"
	"github.com/m04kA/SMC-CourtBooking/internal/service/availability"
	"github.com/m04kA/SMC-CourtBooking/internal/service/placement"
	"github.com/m04kA/SMC-CourtBooking/internal/service/pricing"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
	"github.com/m04kA/SMC-CourtBooking/pkg/metrics"
	"github.com/m04kA/SMC-CourtBooking/pkg/txmanager"
)

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, key string, event interface{}) error {
	args := m.Called(ctx, key, event)
	return args.Error(0)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fixture struct {
	uc        *UseCase
	store     *memory.Store
	publisher *mockPublisher
	metrics   *metrics.Metrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	tx := txmanager.NewLockManager()
	log := logger.NewNop()
	checker := availability.NewService(store, tx, log)
	placer := placement.NewService(checker, pricing.NewCalculator(store), store).
		WithTimeProvider(fixedTime{time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)})

	pub := &mockPublisher{}
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m := metrics.NewWithRegistry("court-booking", prometheus.NewRegistry())

	return &fixture{
		uc:        NewUseCase(placer, store, tx, pub, m, log),
		store:     store,
		publisher: pub,
		metrics:   m,
	}
}

func peakRequest() *Request {
	return &Request{
		Date:      "2024-06-10",
		StartTime: "18:00",
		EndTime:   "19:00",
		CourtID:   "c1",
		UserName:  "Ann",
	}
}

func TestExecute_CreatesPricedBooking(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), peakRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
	assert.False(t, resp.Waitlisted)

	b := resp.Booking
	assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
	assert.Equal(t, domain.CourtTypeIndoor, b.CourtType)
	assert.Equal(t, 25.0, b.Price.Court)
	assert.InDelta(t, 7.5, b.Price.Adjustments, 1e-9)
	assert.InDelta(t, 32.5, b.Price.Total, 1e-9)
	assert.Empty(t, b.EquipmentItems)

	f.publisher.AssertCalled(t, "Publish", mock.Anything, eventbus.KeyBookingCreated, mock.Anything)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BookingsTotal.WithLabelValues(metrics.OutcomeCreated)))
}

func TestExecute_SecondRequestConflicts(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), peakRequest())
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), peakRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.ErrorIs(t, err, availability.ErrCourtConflict)

	var rejection *RejectionError
	require.True(t, errors.As(err, &rejection))
	assert.Equal(t, "Court already booked for that slot", rejection.Message)

	entries, err := f.store.ListWaitlist(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BookingsTotal.WithLabelValues(metrics.OutcomeRejected)))
}

func TestExecute_JoinWaitlist(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), peakRequest())
	require.NoError(t, err)

	req := peakRequest()
	req.UserName = "Ben"
	req.JoinWaitlist = true
	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Waitlisted)
	assert.Nil(t, resp.Booking)
	require.NotNil(t, resp.Entry)
	assert.Equal(t, "Ben", resp.Entry.UserName)
	assert.Equal(t, domain.WaitlistStatusWaitlisted, resp.Entry.Status)
	assert.Equal(t, "Court already booked for that slot", resp.Entry.Reason)
	assert.Contains(t, resp.Message, "waitlist")

	entries, err := f.store.ListWaitlist(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	bookings, err := f.store.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	f.publisher.AssertCalled(t, "Publish", mock.Anything, eventbus.KeyWaitlistJoined, mock.Anything)
}

func TestExecute_TouchingWindowsCoexist(t *testing.T) {
	f := newFixture(t)

	first := peakRequest()
	first.StartTime, first.EndTime = "09:00", "10:00"
	_, err := f.uc.Execute(context.Background(), first)
	require.NoError(t, err)

	second := peakRequest()
	second.StartTime, second.EndTime = "10:00", "11:00"
	_, err = f.uc.Execute(context.Background(), second)
	require.NoError(t, err)
}

func TestExecute_EquipmentInsufficient(t *testing.T) {
	f := newFixture(t)

	first := peakRequest()
	first.EquipmentItems = []domain.EquipmentItem{{EquipmentID: "e1", Quantity: 15}}
	_, err := f.uc.Execute(context.Background(), first)
	require.NoError(t, err)

	second := peakRequest()
	second.CourtID = "c2"
	second.StartTime, second.EndTime = "18:30", "19:30"
	second.EquipmentItems = []domain.EquipmentItem{{EquipmentID: "e1", Quantity: 10}}
	_, err = f.uc.Execute(context.Background(), second)

	var rejection *RejectionError
	require.True(t, errors.As(err, &rejection))
	assert.Equal(t, "Racket insufficient for requested quantity", rejection.Message)
	assert.ErrorIs(t, err, availability.ErrEquipmentInsufficient)
}

func TestExecute_CoachOutsideSchedule(t *testing.T) {
	f := newFixture(t)

	req := peakRequest()
	req.CoachID = "co1"
	req.StartTime, req.EndTime = "12:00", "13:00"
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, availability.ErrCoachScheduleMismatch)
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		name    string
		mutate  func(r *Request)
		err     error
		message string
	}{
		{
			name:    "missing fields in declaration order",
			mutate:  func(r *Request) { r.Date, r.StartTime = "", "" },
			err:     ErrMissingFields,
			message: "Missing fields: date, startTime",
		},
		{
			name:    "missing user name",
			mutate:  func(r *Request) { r.UserName = "" },
			err:     ErrMissingFields,
			message: "Missing fields: userName",
		},
		{
			name:   "malformed time",
			mutate: func(r *Request) { r.StartTime = "6pm" },
			err:    ErrInvalidTime,
		},
		{
			name:    "empty range",
			mutate:  func(r *Request) { r.EndTime = "18:00" },
			err:     ErrInvalidRange,
			message: "startTime must be before endTime",
		},
		{
			name:    "out of range date",
			mutate:  func(r *Request) { r.Date = "2024-13-40" },
			err:     ErrInvalidDate,
			message: "Invalid date format",
		},
		{
			name:   "zero quantity",
			mutate: func(r *Request) { r.EquipmentItems = []domain.EquipmentItem{{EquipmentID: "e1"}} },
			err:    ErrInvalidEquipment,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := peakRequest()
			tc.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, tc.err)

			var rejection *RejectionError
			require.True(t, errors.As(err, &rejection))
			if tc.message != "" {
				assert.Equal(t, tc.message, rejection.Message)
			}
		})
	}

	bookings, err := f.store.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestExecute_PublishFailureDoesNotFail(t *testing.T) {
	f := newFixture(t)
	pub := &mockPublisher{}
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker down"))
	f.uc.publisher = pub

	resp, err := f.uc.Execute(context.Background(), peakRequest())
	require.NoError(t, err)
	assert.NotNil(t, resp.Booking)
}
