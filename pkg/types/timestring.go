package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const timeLayout = "15:04"

var (
	// ErrInvalidTimeString is returned when a value is not a valid "HH:MM" time of day
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrInvalidTimeRange is returned for malformed "HH:MM-HH:MM" ranges
	ErrInvalidTimeRange = errors.New("invalid time range")
)

// TimeString is a naive local time of day in "HH:MM" form with minute resolution
type TimeString string

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	t := TimeString(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks the strict "HH:MM" format
func (t TimeString) Validate() error {
	if len(t) != len(timeLayout) {
		return ErrInvalidTimeString
	}
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return ErrInvalidTimeString
	}
	return nil
}

// IsZero returns true for an empty value
func (t TimeString) IsZero() bool {
	return t == ""
}

func (t TimeString) String() string {
	return string(t)
}

// Minutes returns minutes since midnight.
// The value must be validated beforehand; malformed input yields -1.
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return -1
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// Hour returns the hour component only, minutes are ignored
func (t TimeString) Hour() int {
	m := t.Minutes()
	if m < 0 {
		return -1
	}
	return m / 60
}

// IsBefore reports whether t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// ToMinutes returns minutes since midnight for an "HH:MM" value
func ToMinutes(t TimeString) int {
	return t.Minutes()
}

// Overlaps reports half-open interval overlap: touching boundaries do not overlap
func Overlaps(aStart, aEnd, bStart, bEnd TimeString) bool {
	return aStart.Minutes() < bEnd.Minutes() && bStart.Minutes() < aEnd.Minutes()
}

// DurationHours returns (end - start) in hours. The caller guarantees end > start.
func DurationHours(start, end TimeString) float64 {
	return float64(end.Minutes()-start.Minutes()) / 60
}

// TimeRange is a weekly schedule window serialized as "HH:MM-HH:MM"
type TimeRange struct {
	Start TimeString
	End   TimeString
}

// ParseTimeRange parses "HH:MM-HH:MM" and requires Start < End
func ParseTimeRange(s string) (TimeRange, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}

	start, err := NewTimeStringFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}
	end, err := NewTimeStringFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}
	if !start.IsBefore(end) {
		return TimeRange{}, fmt.Errorf("%w: %q start must be before end", ErrInvalidTimeRange, s)
	}

	return TimeRange{Start: start, End: end}, nil
}

func (r TimeRange) String() string {
	return string(r.Start) + "-" + string(r.End)
}

// Contains reports whether [start, end) overlaps the range and lies fully within its bounds
func (r TimeRange) Contains(start, end TimeString) bool {
	if !Overlaps(r.Start, r.End, start, end) {
		return false
	}
	return start.Minutes() >= r.Start.Minutes() && end.Minutes() <= r.End.Minutes()
}

func (r TimeRange) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *TimeRange) UnmarshalText(data []byte) error {
	parsed, err := ParseTimeRange(string(data))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
