package types

import (
	"strings"
	"time"
)

// DateLayout is the only accepted calendar date format
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day. The zero value is invalid.
type Date struct {
	t     time.Time
	valid bool
}

// ParseDate strictly parses "YYYY-MM-DD".
// Out-of-range components such as "2024-13-40" are rejected, never normalized.
func ParseDate(s string) Date {
	if len(s) != len(DateLayout) {
		return Date{}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}
	}
	return Date{t: t, valid: true}
}

// ParseDateLoose accepts a date prefix of ISO-8601 timestamps ("2024-06-10T18:00:00Z")
// as well as bare dates, evaluated in UTC. Used only where a day of week is derived
// from unvalidated input.
func ParseDateLoose(s string) Date {
	s = strings.TrimSpace(s)
	if d := ParseDate(s); d.IsValid() {
		return d
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			u := t.UTC()
			return Date{t: time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC), valid: true}
		}
	}
	return Date{}
}

func (d Date) IsValid() bool {
	return d.valid
}

// DayOfWeek returns 0 (Sunday) .. 6 (Saturday), or -1 for an invalid date
func (d Date) DayOfWeek() int {
	if !d.valid {
		return -1
	}
	return int(d.t.Weekday())
}

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	if !d.valid {
		return ""
	}
	return d.t.Format(DateLayout)
}
