package domain

// CourtStatus controls whether a court is bookable
type CourtStatus string

const (
	CourtStatusActive   CourtStatus = "active"
	CourtStatusDisabled CourtStatus = "disabled"
)

// Court types shipped with the seed catalog. The set is open.
const (
	CourtTypeIndoor  = "indoor"
	CourtTypeOutdoor = "outdoor"
)

// Court represents a bookable court
type Court struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	BaseRate float64     `json:"baseRate"` // per hour
	Status   CourtStatus `json:"status"`
}

// IsActive returns true if the court can be booked
func (c *Court) IsActive() bool {
	return c.Status == CourtStatusActive
}

// IsValidCourtStatus reports whether s is a known court status
func IsValidCourtStatus(s CourtStatus) bool {
	return s == CourtStatusActive || s == CourtStatusDisabled
}

// CourtAvailability is a court with its availability for a requested window
type CourtAvailability struct {
	Court
	Available bool `json:"available"`
}
