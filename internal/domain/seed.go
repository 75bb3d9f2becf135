package domain

import "github.com/m04kA/SMC-CourtBooking/pkg/types"

// Seed catalog. Every call returns fresh values so callers may mutate them.

func SeedCourts() []Court {
	return []Court{
		{ID: "c1", Name: "Indoor Court 1", Type: CourtTypeIndoor, Status: CourtStatusActive, BaseRate: 25},
		{ID: "c2", Name: "Indoor Court 2", Type: CourtTypeIndoor, Status: CourtStatusActive, BaseRate: 25},
		{ID: "c3", Name: "Outdoor Court 1", Type: CourtTypeOutdoor, Status: CourtStatusActive, BaseRate: 18},
		{ID: "c4", Name: "Outdoor Court 2", Type: CourtTypeOutdoor, Status: CourtStatusActive, BaseRate: 18},
	}
}

func SeedEquipment() []Equipment {
	return []Equipment{
		{ID: "e1", Name: "Racket", Quantity: 20, RentalFee: 5},
		{ID: "e2", Name: "Shoes", Quantity: 15, RentalFee: 4},
	}
}

func SeedCoaches() []Coach {
	return []Coach{
		{
			ID:         "co1",
			Name:       "Priya Iyer",
			Bio:        "Former national player with focus on footwork fundamentals.",
			HourlyRate: 35,
			Active:     true,
			Availability: []WeeklyAvailability{
				{DayOfWeek: 1, Slots: slots("07:00", "11:00", "17:00", "20:00")},
				{DayOfWeek: 3, Slots: slots("07:00", "11:00", "17:00", "20:00")},
				{DayOfWeek: 5, Slots: slots("07:00", "12:00")},
			},
		},
		{
			ID:         "co2",
			Name:       "Arjun Mehta",
			Bio:        "Doubles specialist focusing on strategy and positioning.",
			HourlyRate: 32,
			Active:     true,
			Availability: []WeeklyAvailability{
				{DayOfWeek: 2, Slots: slots("08:00", "12:00", "16:00", "19:00")},
				{DayOfWeek: 4, Slots: slots("08:00", "12:00", "16:00", "19:00")},
				{DayOfWeek: 6, Slots: slots("09:00", "13:00")},
			},
		},
		{
			ID:         "co3",
			Name:       "Sara Khan",
			Bio:        "Junior coach with focus on beginners and safe play.",
			HourlyRate: 24,
			Active:     true,
			Availability: []WeeklyAvailability{
				{DayOfWeek: 0, Slots: slots("10:00", "14:00")},
				{DayOfWeek: 2, Slots: slots("15:00", "20:00")},
				{DayOfWeek: 5, Slots: slots("15:00", "20:00")},
			},
		},
	}
}

func SeedPricingRules() []PricingRule {
	return []PricingRule{
		{
			ID:          "pr1",
			Name:        "Peak Hours",
			Description: "6pm - 9pm premium",
			Type:        RuleTypeTime,
			Criteria:    TimeCriteria{StartHour: 18, EndHour: 21},
			Amount:      0.2,
			Mode:        RuleModePercent,
			Enabled:     true,
		},
		{
			ID:          "pr2",
			Name:        "Weekend Premium",
			Description: "Higher demand on weekends",
			Type:        RuleTypeDayOfWeek,
			Criteria:    DayOfWeekCriteria{DaysOfWeek: []int{0, 6}},
			Amount:      0.15,
			Mode:        RuleModePercent,
			Enabled:     true,
		},
		{
			ID:          "pr3",
			Name:        "Indoor Court Premium",
			Description: "Indoor courts have controlled environment",
			Type:        RuleTypeCourtType,
			Criteria:    CourtTypeCriteria{CourtType: CourtTypeIndoor},
			Amount:      0.1,
			Mode:        RuleModePercent,
			Enabled:     true,
		},
		{
			ID:          "pr4",
			Name:        "Equipment Service Fee",
			Description: "Operational handling fee on rentals",
			Type:        RuleTypeEquipment,
			Criteria:    EquipmentCriteria{},
			Amount:      1.5,
			Mode:        RuleModeFlatPerItem,
			Enabled:     true,
		},
		{
			ID:          "pr5",
			Name:        "Coach Premium",
			Description: "Coach sessions include setup and review",
			Type:        RuleTypeCoach,
			Criteria:    CoachCriteria{},
			Amount:      5,
			Mode:        RuleModeFlat,
			Enabled:     true,
		},
	}
}

// slots pairs up start/end values into ranges
func slots(bounds ...types.TimeString) []types.TimeRange {
	ranges := make([]types.TimeRange, 0, len(bounds)/2)
	for i := 0; i+1 < len(bounds); i += 2 {
		ranges = append(ranges, types.TimeRange{Start: bounds[i], End: bounds[i+1]})
	}
	return ranges
}
