package domain

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

// ID prefixes per entity
const (
	PrefixCourt     = "c"
	PrefixEquipment = "e"
	PrefixCoach     = "co"
	PrefixRule      = "pr"
	PrefixBooking   = "bk"
	PrefixWaitlist  = "wl"
)

// Time format constants: HH:MM and YYYY-MM-DD
const (
	TimeFormat = "15:04"
	DateFormat = types.DateLayout
)

// NewID returns a fresh prefixed identifier, e.g. "bk-8f14e45f-..."
func NewID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
