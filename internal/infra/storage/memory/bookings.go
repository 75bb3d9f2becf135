package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/storage"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

// Bookings

func (s *Store) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = append(s.bookings, cloneBooking(*booking))
	created := cloneBooking(*booking)
	return &created, nil
}

func (s *Store) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.bookings, func(b domain.Booking) bool { return b.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%w: booking %s", storage.ErrNotFound, id)
	}
	booking := cloneBooking(s.bookings[i])
	return &booking, nil
}

// ListBookings возвращает все бронирования, включая отмененные, от старых к новым
func (s *Store) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return ptrs(s.bookings, cloneBooking), nil
}

// ListActiveBookingsByDate возвращает неотмененные бронирования на дату
func (s *Store) ListActiveBookingsByDate(ctx context.Context, date string) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if b.Date != date || !b.IsActive() {
			continue
		}
		c := cloneBooking(b)
		out = append(out, &c)
	}
	return out, nil
}

func (s *Store) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.bookings, func(b domain.Booking) bool { return b.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: booking %s", storage.ErrNotFound, id)
	}
	s.bookings[i].Status = status
	return nil
}

// Waitlist

func (s *Store) CreateWaitlistEntry(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.waitlist = append(s.waitlist, cloneEntry(*entry))
	created := cloneEntry(*entry)
	return &created, nil
}

func (s *Store) ListWaitlist(ctx context.Context) ([]*domain.WaitlistEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return ptrs(s.waitlist, cloneEntry), nil
}

// FirstWaitlistMatch возвращает самую старую запись с точным совпадением корта, даты и времени
func (s *Store) FirstWaitlistMatch(ctx context.Context, courtID, date string, start, end types.TimeString) (*domain.WaitlistEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.waitlist, func(w domain.WaitlistEntry) bool { return w.MatchesSlot(courtID, date, start, end) })
	if i < 0 {
		return nil, fmt.Errorf("%w: waitlist entry for %s %s %s-%s", storage.ErrNotFound, courtID, date, start, end)
	}
	entry := cloneEntry(s.waitlist[i])
	return &entry, nil
}

func (s *Store) DeleteWaitlistEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.waitlist, func(w domain.WaitlistEntry) bool { return w.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: waitlist entry %s", storage.ErrNotFound, id)
	}
	s.waitlist = slices.Delete(s.waitlist, i, i+1)
	return nil
}
