package domain

// AppliedRule records one non-zero rule adjustment in a breakdown
type AppliedRule struct {
	RuleID string   `json:"ruleId"`
	Name   string   `json:"name"`
	Delta  float64  `json:"delta"`
	Mode   RuleMode `json:"mode"`
}

// PriceBreakdown is the itemized result of the pricing calculator.
// A booking keeps it as an immutable snapshot.
type PriceBreakdown struct {
	Hours        float64       `json:"hours"`
	Court        float64       `json:"court"`
	Equipment    float64       `json:"equipment"`
	Coach        float64       `json:"coach"`
	Adjustments  float64       `json:"adjustments"`
	AppliedRules []AppliedRule `json:"appliedRules"`
	BaseTotal    float64       `json:"baseTotal"`
	Total        float64       `json:"total"`
}
