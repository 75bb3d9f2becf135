// Package memory is the process-memory storage backend.
// Collections keep insertion order. Values are copied in and out so callers
// never share memory with the store.
package memory

import (
	"sync"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// Store owns all catalog, booking and waitlist collections
type Store struct {
	mu sync.RWMutex

	courts    []domain.Court
	equipment []domain.Equipment
	coaches   []domain.Coach
	rules     []domain.PricingRule
	bookings  []domain.Booking
	waitlist  []domain.WaitlistEntry
}

// NewStore создает хранилище с начальным каталогом
func NewStore() *Store {
	s := &Store{}
	s.seed()
	return s
}

// Reset восстанавливает начальный каталог и очищает бронирования и лист ожидания.
// Используется только в тестах.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seed()
}

func (s *Store) seed() {
	s.courts = domain.SeedCourts()
	s.equipment = domain.SeedEquipment()
	s.coaches = domain.SeedCoaches()
	s.rules = domain.SeedPricingRules()
	s.bookings = nil
	s.waitlist = nil
}
