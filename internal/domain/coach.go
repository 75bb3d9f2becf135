package domain

import "github.com/m04kA/SMC-CourtBooking/pkg/types"

// WeeklyAvailability lists the slot ranges a coach works on one day of week
type WeeklyAvailability struct {
	DayOfWeek int               `json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	Slots     []types.TimeRange `json:"slots"`
}

// Coach represents a bookable coach
type Coach struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Bio          string               `json:"bio"`
	HourlyRate   float64              `json:"hourlyRate"`
	Active       bool                 `json:"active"`
	Availability []WeeklyAvailability `json:"availability"`
}

// CoachAvailability is a coach with its availability for a requested window
type CoachAvailability struct {
	Coach
	Available bool `json:"available"`
}

// ScheduleFor returns the first schedule declared for the day, or nil
func (c *Coach) ScheduleFor(dayOfWeek int) *WeeklyAvailability {
	for i := range c.Availability {
		if c.Availability[i].DayOfWeek == dayOfWeek {
			return &c.Availability[i]
		}
	}
	return nil
}

// CoversWindow reports whether a single slot of that day fully contains [start, end).
// A window straddling two disjoint slots is not covered.
func (c *Coach) CoversWindow(dayOfWeek int, start, end types.TimeString) bool {
	schedule := c.ScheduleFor(dayOfWeek)
	if schedule == nil {
		return false
	}
	for _, slot := range schedule.Slots {
		if slot.Contains(start, end) {
			return true
		}
	}
	return false
}
