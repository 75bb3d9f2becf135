package placement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-CourtBooking/internal/service/availability"
	"github.com/m04kA/SMC-CourtBooking/internal/service/pricing"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
	"github.com/m04kA/SMC-CourtBooking/pkg/txmanager"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type mockChecker struct{ mock.Mock }

func (m *mockChecker) Check(ctx context.Context, req domain.BookingRequest) (*domain.Court, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Court), args.Error(1)
}

func newPlacer(store *memory.Store, now time.Time) *Service {
	checker := availability.NewService(store, txmanager.NewLockManager(), logger.NewNop())
	return NewService(checker, pricing.NewCalculator(store), store).WithTimeProvider(fixedTime{now})
}

func TestPlace(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	svc := newPlacer(store, now)
	req := domain.BookingRequest{UserName: "Ann", CourtID: "c1", Date: "2024-06-10", StartTime: "18:00", EndTime: "19:00"}

	booking, err := svc.Place(context.Background(), req, true)
	require.NoError(t, err)
	assert.Equal(t, domain.CourtTypeIndoor, booking.CourtType)
	assert.InDelta(t, 32.5, booking.Price.Total, 1e-9)
	assert.True(t, booking.PromotedFromWaitlist)
	assert.Equal(t, now, booking.CreatedAt)

	stored, err := store.GetBooking(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, stored.ID)
}

func TestPlace_ConflictWritesNothing(t *testing.T) {
	store := memory.NewStore()
	svc := newPlacer(store, time.Now())
	req := domain.BookingRequest{UserName: "Ann", CourtID: "c1", Date: "2024-06-10", StartTime: "18:00", EndTime: "19:00"}

	_, err := svc.Place(context.Background(), req, false)
	require.NoError(t, err)

	_, err = svc.Place(context.Background(), req, false)
	assert.ErrorIs(t, err, availability.ErrCourtConflict)

	bookings, err := store.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestPlace_CheckerFailureIsInternal(t *testing.T) {
	store := memory.NewStore()
	checker := &mockChecker{}
	checker.On("Check", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	svc := NewService(checker, pricing.NewCalculator(store), store)

	_, err := svc.Place(context.Background(), domain.BookingRequest{CourtID: "c1"}, false)
	assert.ErrorIs(t, err, ErrInternal)
	assert.False(t, availability.IsConflict(err))
}
