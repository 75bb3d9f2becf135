package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/storage"
)

func TestStore_SeedCatalog(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	courts, err := s.ListCourts(ctx)
	require.NoError(t, err)
	require.Len(t, courts, 4)
	assert.Equal(t, "c1", courts[0].ID)

	rules, err := s.ListPricingRules(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(rules))
	for _, r := range rules {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"pr1", "pr2", "pr3", "pr4", "pr5"}, ids)
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	coach, err := s.GetCoach(ctx, "co1")
	require.NoError(t, err)
	coach.Name = "changed"
	coach.Availability[0].Slots[0].Start = "00:00"

	again, err := s.GetCoach(ctx, "co1")
	require.NoError(t, err)
	assert.Equal(t, "Priya Iyer", again.Name)
	assert.Equal(t, "07:00", again.Availability[0].Slots[0].Start.String())
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, err := s.GetCourt(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.UpdateEquipment(ctx, &domain.Equipment{ID: "missing"})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.DeletePricingRule(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = s.UpdateBookingStatus(ctx, "missing", domain.BookingStatusCancelled)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = s.DeleteWaitlistEntry(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_DeletePricingRuleKeepsOrder(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	removed, err := s.DeletePricingRule(ctx, "pr2")
	require.NoError(t, err)
	assert.Equal(t, "Weekend Premium", removed.Name)

	rules, err := s.ListPricingRules(ctx)
	require.NoError(t, err)
	require.Len(t, rules, 4)
	assert.Equal(t, "pr1", rules[0].ID)
	assert.Equal(t, "pr3", rules[1].ID)
}

func TestStore_Bookings(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	first := &domain.Booking{ID: "bk-1", CourtID: "c1", Date: "2024-06-10", StartTime: "09:00", EndTime: "10:00", Status: domain.BookingStatusConfirmed}
	second := &domain.Booking{ID: "bk-2", CourtID: "c2", Date: "2024-06-11", StartTime: "09:00", EndTime: "10:00", Status: domain.BookingStatusConfirmed}
	_, err := s.CreateBooking(ctx, first)
	require.NoError(t, err)
	_, err = s.CreateBooking(ctx, second)
	require.NoError(t, err)

	active, err := s.ListActiveBookingsByDate(ctx, "2024-06-10")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "bk-1", active[0].ID)

	require.NoError(t, s.UpdateBookingStatus(ctx, "bk-1", domain.BookingStatusCancelled))

	active, err = s.ListActiveBookingsByDate(ctx, "2024-06-10")
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := s.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, domain.BookingStatusCancelled, all[0].Status)
	assert.NotNil(t, all[0].EquipmentItems)
}

func TestStore_Waitlist(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	older := &domain.WaitlistEntry{ID: "wl-1", CourtID: "c1", Date: "2024-06-10", StartTime: "18:00", EndTime: "19:00"}
	newer := &domain.WaitlistEntry{ID: "wl-2", CourtID: "c1", Date: "2024-06-10", StartTime: "18:00", EndTime: "19:00"}
	_, err := s.CreateWaitlistEntry(ctx, older)
	require.NoError(t, err)
	_, err = s.CreateWaitlistEntry(ctx, newer)
	require.NoError(t, err)

	match, err := s.FirstWaitlistMatch(ctx, "c1", "2024-06-10", "18:00", "19:00")
	require.NoError(t, err)
	assert.Equal(t, "wl-1", match.ID)

	_, err = s.FirstWaitlistMatch(ctx, "c1", "2024-06-10", "18:00", "20:00")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.DeleteWaitlistEntry(ctx, "wl-1"))
	entries, err := s.ListWaitlist(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "wl-2", entries[0].ID)
}

func TestStore_Reset(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, err := s.CreateBooking(ctx, &domain.Booking{ID: "bk-1"})
	require.NoError(t, err)
	_, err = s.CreateWaitlistEntry(ctx, &domain.WaitlistEntry{ID: "wl-1"})
	require.NoError(t, err)
	_, err = s.DeletePricingRule(ctx, "pr1")
	require.NoError(t, err)

	s.Reset()

	bookings, _ := s.ListBookings(ctx)
	assert.Empty(t, bookings)
	entries, _ := s.ListWaitlist(ctx)
	assert.Empty(t, entries)
	rules, _ := s.ListPricingRules(ctx)
	assert.Len(t, rules, 5)
}
