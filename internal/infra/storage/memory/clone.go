package memory

import (
	"slices"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

func cloneCoach(c domain.Coach) domain.Coach {
	availability := make([]domain.WeeklyAvailability, len(c.Availability))
	for i, day := range c.Availability {
		availability[i] = domain.WeeklyAvailability{
			DayOfWeek: day.DayOfWeek,
			Slots:     append([]types.TimeRange(nil), day.Slots...),
		}
	}
	c.Availability = availability
	return c
}

func cloneRule(r domain.PricingRule) domain.PricingRule {
	if days, ok := r.Criteria.(domain.DayOfWeekCriteria); ok {
		r.Criteria = domain.DayOfWeekCriteria{DaysOfWeek: slices.Clone(days.DaysOfWeek)}
	}
	return r
}

func cloneItems(items []domain.EquipmentItem) []domain.EquipmentItem {
	if items == nil {
		return []domain.EquipmentItem{}
	}
	return slices.Clone(items)
}

func cloneBooking(b domain.Booking) domain.Booking {
	b.EquipmentItems = cloneItems(b.EquipmentItems)
	b.Price.AppliedRules = slices.Clone(b.Price.AppliedRules)
	if b.Price.AppliedRules == nil {
		b.Price.AppliedRules = []domain.AppliedRule{}
	}
	return b
}

func cloneEntry(w domain.WaitlistEntry) domain.WaitlistEntry {
	w.EquipmentItems = cloneItems(w.EquipmentItems)
	return w
}

// ptrs returns copies of values as pointers
func ptrs[T any](values []T, clone func(T) T) []*T {
	out := make([]*T, 0, len(values))
	for _, v := range values {
		c := clone(v)
		out = append(out, &c)
	}
	return out
}

func same[T any](v T) T { return v }
