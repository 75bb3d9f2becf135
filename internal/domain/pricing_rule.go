package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

var (
	// ErrUnknownRuleType is returned when a rule type has no criteria variant
	ErrUnknownRuleType = errors.New("unknown pricing rule type")

	// ErrInvalidCriteria is returned when criteria parameters are malformed
	ErrInvalidCriteria = errors.New("invalid pricing rule criteria")
)

// RuleType is the discriminant of the pricing rule criteria union
type RuleType string

const (
	RuleTypeTime      RuleType = "time"
	RuleTypeDayOfWeek RuleType = "day-of-week"
	RuleTypeCourtType RuleType = "court-type"
	RuleTypeEquipment RuleType = "equipment"
	RuleTypeCoach     RuleType = "coach"
)

// RuleMode defines how a rule amount turns into a price delta
type RuleMode string

const (
	RuleModePercent     RuleMode = "percent"       // baseTotal * amount
	RuleModeFlat        RuleMode = "flat"          // amount
	RuleModeFlatPerItem RuleMode = "flat-per-item" // amount * equipment units
)

// IsKnownRuleMode reports whether m has a delta formula
func IsKnownRuleMode(m RuleMode) bool {
	switch m {
	case RuleModePercent, RuleModeFlat, RuleModeFlatPerItem:
		return true
	}
	return false
}

// PricingContext is the evaluation input for rule predicates
type PricingContext struct {
	DayOfWeek      int // -1 when the date could not be parsed
	StartTime      types.TimeString
	Court          *Court
	EquipmentUnits int
	HasCoach       bool
	BaseTotal      float64
}

// Criteria is one variant of the rule criteria union
type Criteria interface {
	RuleType() RuleType
	Matches(ctx PricingContext) bool
	Validate() error
}

// TimeCriteria matches when startHour <= hour(start) < endHour. Minutes are ignored.
type TimeCriteria struct {
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

func (TimeCriteria) RuleType() RuleType { return RuleTypeTime }

func (c TimeCriteria) Matches(ctx PricingContext) bool {
	hour := ctx.StartTime.Hour()
	if hour < 0 {
		return false
	}
	return c.StartHour <= hour && hour < c.EndHour
}

func (c TimeCriteria) Validate() error {
	if c.StartHour < 0 || c.EndHour > 24 || c.StartHour >= c.EndHour {
		return fmt.Errorf("%w: startHour=%d endHour=%d", ErrInvalidCriteria, c.StartHour, c.EndHour)
	}
	return nil
}

// DayOfWeekCriteria matches listed days, 0 = Sunday
type DayOfWeekCriteria struct {
	DaysOfWeek []int `json:"daysOfWeek"`
}

func (DayOfWeekCriteria) RuleType() RuleType { return RuleTypeDayOfWeek }

func (c DayOfWeekCriteria) Matches(ctx PricingContext) bool {
	return ctx.DayOfWeek >= 0 && slices.Contains(c.DaysOfWeek, ctx.DayOfWeek)
}

func (c DayOfWeekCriteria) Validate() error {
	for _, d := range c.DaysOfWeek {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: day of week %d", ErrInvalidCriteria, d)
		}
	}
	return nil
}

// CourtTypeCriteria matches the resolved court's type
type CourtTypeCriteria struct {
	CourtType string `json:"courtType"`
}

func (CourtTypeCriteria) RuleType() RuleType { return RuleTypeCourtType }

func (c CourtTypeCriteria) Matches(ctx PricingContext) bool {
	return ctx.Court != nil && ctx.Court.Type == c.CourtType
}

func (c CourtTypeCriteria) Validate() error {
	if c.CourtType == "" {
		return fmt.Errorf("%w: courtType is required", ErrInvalidCriteria)
	}
	return nil
}

// EquipmentCriteria matches any request with rented equipment
type EquipmentCriteria struct{}

func (EquipmentCriteria) RuleType() RuleType { return RuleTypeEquipment }

func (EquipmentCriteria) Matches(ctx PricingContext) bool { return ctx.EquipmentUnits > 0 }

func (EquipmentCriteria) Validate() error { return nil }

// CoachCriteria matches any request with a coach
type CoachCriteria struct{}

func (CoachCriteria) RuleType() RuleType { return RuleTypeCoach }

func (CoachCriteria) Matches(ctx PricingContext) bool { return ctx.HasCoach }

func (CoachCriteria) Validate() error { return nil }

// DecodeCriteria builds the criteria variant for the rule type from raw JSON.
// Empty input decodes into the zero variant.
func DecodeCriteria(t RuleType, raw json.RawMessage) (Criteria, error) {
	var c Criteria
	switch t {
	case RuleTypeTime:
		v := TimeCriteria{}
		if err := unmarshalCriteria(raw, &v); err != nil {
			return nil, err
		}
		c = v
	case RuleTypeDayOfWeek:
		v := DayOfWeekCriteria{}
		if err := unmarshalCriteria(raw, &v); err != nil {
			return nil, err
		}
		c = v
	case RuleTypeCourtType:
		v := CourtTypeCriteria{}
		if err := unmarshalCriteria(raw, &v); err != nil {
			return nil, err
		}
		c = v
	case RuleTypeEquipment:
		c = EquipmentCriteria{}
	case RuleTypeCoach:
		c = CoachCriteria{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRuleType, t)
	}
	return c, nil
}

func unmarshalCriteria(raw json.RawMessage, dst any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCriteria, err)
	}
	return nil
}

// PricingRule is a named price adjustment applied when its criteria match
type PricingRule struct {
	ID          string
	Name        string
	Description string
	Type        RuleType
	Criteria    Criteria
	Amount      float64
	Mode        RuleMode
	Enabled     bool
}

// Matches evaluates the rule against ctx. Disabled rules and rules whose
// criteria variant does not belong to their type never match.
func (r *PricingRule) Matches(ctx PricingContext) bool {
	if !r.Enabled || r.Criteria == nil || r.Criteria.RuleType() != r.Type {
		return false
	}
	return r.Criteria.Matches(ctx)
}

// Delta computes the price adjustment of a matching rule. Unknown modes yield 0.
func (r *PricingRule) Delta(ctx PricingContext) float64 {
	switch r.Mode {
	case RuleModePercent:
		return ctx.BaseTotal * r.Amount
	case RuleModeFlat:
		return r.Amount
	case RuleModeFlatPerItem:
		return r.Amount * float64(ctx.EquipmentUnits)
	default:
		return 0
	}
}

// Validate checks the rule is fully specified for persistence
func (r *PricingRule) Validate() error {
	if r.Criteria == nil {
		return fmt.Errorf("%w: %q", ErrUnknownRuleType, r.Type)
	}
	if r.Criteria.RuleType() != r.Type {
		return fmt.Errorf("%w: criteria of %q for rule type %q", ErrInvalidCriteria, r.Criteria.RuleType(), r.Type)
	}
	if !IsKnownRuleMode(r.Mode) {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidCriteria, r.Mode)
	}
	return r.Criteria.Validate()
}

type pricingRuleJSON struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Type        RuleType        `json:"type"`
	Enabled     bool            `json:"enabled"`
	Criteria    json.RawMessage `json:"criteria"`
	Amount      float64         `json:"amount"`
	Mode        RuleMode        `json:"mode"`
}

func (r PricingRule) MarshalJSON() ([]byte, error) {
	criteria := json.RawMessage("{}")
	if r.Criteria != nil {
		raw, err := json.Marshal(r.Criteria)
		if err != nil {
			return nil, err
		}
		criteria = raw
	}
	return json.Marshal(pricingRuleJSON{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Type:        r.Type,
		Enabled:     r.Enabled,
		Criteria:    criteria,
		Amount:      r.Amount,
		Mode:        r.Mode,
	})
}

func (r *PricingRule) UnmarshalJSON(data []byte) error {
	var raw pricingRuleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	criteria, err := DecodeCriteria(raw.Type, raw.Criteria)
	if err != nil {
		return err
	}
	*r = PricingRule{
		ID:          raw.ID,
		Name:        raw.Name,
		Description: raw.Description,
		Type:        raw.Type,
		Criteria:    criteria,
		Amount:      raw.Amount,
		Mode:        raw.Mode,
		Enabled:     raw.Enabled,
	}
	return nil
}
