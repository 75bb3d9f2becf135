package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled" // terminal
)

// BookingRequest carries the resource and time fields shared by bookings,
// quotes and waitlist entries
type BookingRequest struct {
	UserName       string
	UserContact    string
	CourtID        string
	CoachID        string // empty when no coach is requested
	EquipmentItems []EquipmentItem
	Date           string // YYYY-MM-DD
	StartTime      types.TimeString
	EndTime        types.TimeString
}

// HasCoach returns true if a coach is requested
func (r *BookingRequest) HasCoach() bool {
	return r.CoachID != ""
}

// Booking represents a court reservation
type Booking struct {
	ID                   string           `json:"id"`
	UserName             string           `json:"userName"`
	UserContact          string           `json:"userContact"`
	CourtID              string           `json:"courtId"`
	CourtType            string           `json:"courtType"` // copied from the court at creation
	CoachID              string           `json:"coachId,omitempty"`
	EquipmentItems       []EquipmentItem  `json:"equipmentItems"`
	Date                 string           `json:"date"`
	StartTime            types.TimeString `json:"startTime"`
	EndTime              types.TimeString `json:"endTime"`
	Price                PriceBreakdown   `json:"price"`
	Status               BookingStatus    `json:"status"`
	CreatedAt            time.Time        `json:"createdAt"`
	PromotedFromWaitlist bool             `json:"promotedFromWaitlist,omitempty"`
}

// IsActive returns true if the booking still holds its resources
func (b *Booking) IsActive() bool {
	return b.Status != BookingStatusCancelled
}

// Occupies reports whether the booking is active on date and overlaps [start, end)
func (b *Booking) Occupies(date string, start, end types.TimeString) bool {
	return b.IsActive() && b.Date == date && types.Overlaps(b.StartTime, b.EndTime, start, end)
}

// Cancel flips the status. Cancelling twice is allowed.
func (b *Booking) Cancel() {
	b.Status = BookingStatusCancelled
}

// NewBooking builds a confirmed booking from a request and its price
func NewBooking(req BookingRequest, court *Court, price PriceBreakdown, now time.Time) *Booking {
	items := req.EquipmentItems
	if items == nil {
		items = []EquipmentItem{}
	}
	return &Booking{
		ID:             NewID(PrefixBooking),
		UserName:       req.UserName,
		UserContact:    req.UserContact,
		CourtID:        req.CourtID,
		CourtType:      court.Type,
		CoachID:        req.CoachID,
		EquipmentItems: items,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Price:          price,
		Status:         BookingStatusConfirmed,
		CreatedAt:      now,
	}
}
