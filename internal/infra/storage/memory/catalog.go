package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/storage"
)

// Courts

func (s *Store) ListCourts(ctx context.Context) ([]*domain.Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return ptrs(s.courts, same[domain.Court]), nil
}

func (s *Store) GetCourt(ctx context.Context, id string) (*domain.Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.courts, func(c domain.Court) bool { return c.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%w: court %s", storage.ErrNotFound, id)
	}
	court := s.courts[i]
	return &court, nil
}

func (s *Store) CreateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.courts = append(s.courts, *court)
	created := *court
	return &created, nil
}

func (s *Store) UpdateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.courts, func(c domain.Court) bool { return c.ID == court.ID })
	if i < 0 {
		return nil, fmt.Errorf("%w: court %s", storage.ErrNotFound, court.ID)
	}
	s.courts[i] = *court
	updated := *court
	return &updated, nil
}

// Equipment

func (s *Store) ListEquipment(ctx context.Context) ([]*domain.Equipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return ptrs(s.equipment, same[domain.Equipment]), nil
}

func (s *Store) GetEquipment(ctx context.Context, id string) (*domain.Equipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.equipment, func(e domain.Equipment) bool { return e.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%w: equipment %s", storage.ErrNotFound, id)
	}
	eq := s.equipment[i]
	return &eq, nil
}

func (s *Store) CreateEquipment(ctx context.Context, eq *domain.Equipment) (*domain.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.equipment = append(s.equipment, *eq)
	created := *eq
	return &created, nil
}

func (s *Store) UpdateEquipment(ctx context.Context, eq *domain.Equipment) (*domain.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.equipment, func(e domain.Equipment) bool { return e.ID == eq.ID })
	if i < 0 {
		return nil, fmt.Errorf("%w: equipment %s", storage.ErrNotFound, eq.ID)
	}
	s.equipment[i] = *eq
	updated := *eq
	return &updated, nil
}

// Coaches

func (s *Store) ListCoaches(ctx context.Context) ([]*domain.Coach, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return ptrs(s.coaches, cloneCoach), nil
}

func (s *Store) GetCoach(ctx context.Context, id string) (*domain.Coach, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.coaches, func(c domain.Coach) bool { return c.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%w: coach %s", storage.ErrNotFound, id)
	}
	coach := cloneCoach(s.coaches[i])
	return &coach, nil
}

func (s *Store) CreateCoach(ctx context.Context, coach *domain.Coach) (*domain.Coach, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.coaches = append(s.coaches, cloneCoach(*coach))
	created := cloneCoach(*coach)
	return &created, nil
}

func (s *Store) UpdateCoach(ctx context.Context, coach *domain.Coach) (*domain.Coach, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.coaches, func(c domain.Coach) bool { return c.ID == coach.ID })
	if i < 0 {
		return nil, fmt.Errorf("%w: coach %s", storage.ErrNotFound, coach.ID)
	}
	s.coaches[i] = cloneCoach(*coach)
	updated := cloneCoach(*coach)
	return &updated, nil
}

// Pricing rules

func (s *Store) ListPricingRules(ctx context.Context) ([]*domain.PricingRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return ptrs(s.rules, cloneRule), nil
}

func (s *Store) GetPricingRule(ctx context.Context, id string) (*domain.PricingRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.rules, func(r domain.PricingRule) bool { return r.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%w: pricing rule %s", storage.ErrNotFound, id)
	}
	rule := cloneRule(s.rules[i])
	return &rule, nil
}

func (s *Store) CreatePricingRule(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rules = append(s.rules, cloneRule(*rule))
	created := cloneRule(*rule)
	return &created, nil
}

func (s *Store) UpdatePricingRule(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.rules, func(r domain.PricingRule) bool { return r.ID == rule.ID })
	if i < 0 {
		return nil, fmt.Errorf("%w: pricing rule %s", storage.ErrNotFound, rule.ID)
	}
	s.rules[i] = cloneRule(*rule)
	updated := cloneRule(*rule)
	return &updated, nil
}

// DeletePricingRule удаляет правило и возвращает удаленную запись
func (s *Store) DeletePricingRule(ctx context.Context, id string) (*domain.PricingRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.rules, func(r domain.PricingRule) bool { return r.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%w: pricing rule %s", storage.ErrNotFound, id)
	}
	removed := s.rules[i]
	s.rules = slices.Delete(s.rules, i, i+1)
	return &removed, nil
}
