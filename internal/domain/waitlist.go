package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

// WaitlistStatusWaitlisted is the only status an entry has while stored
const WaitlistStatusWaitlisted = "waitlisted"

// WaitlistEntry is a deferred booking request
type WaitlistEntry struct {
	ID             string           `json:"id"`
	UserName       string           `json:"userName"`
	UserContact    string           `json:"userContact"`
	CourtID        string           `json:"courtId"`
	CoachID        string           `json:"coachId,omitempty"`
	EquipmentItems []EquipmentItem  `json:"equipmentItems"`
	Date           string           `json:"date"`
	StartTime      types.TimeString `json:"startTime"`
	EndTime        types.TimeString `json:"endTime"`
	Status         string           `json:"status"`
	Reason         string           `json:"reason"` // why the request could not be booked
	CreatedAt      time.Time        `json:"createdAt"`
}

// NewWaitlistEntry stores req with the failure reason
func NewWaitlistEntry(req BookingRequest, reason string, now time.Time) *WaitlistEntry {
	items := req.EquipmentItems
	if items == nil {
		items = []EquipmentItem{}
	}
	return &WaitlistEntry{
		ID:             NewID(PrefixWaitlist),
		UserName:       req.UserName,
		UserContact:    req.UserContact,
		CourtID:        req.CourtID,
		CoachID:        req.CoachID,
		EquipmentItems: items,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Status:         WaitlistStatusWaitlisted,
		Reason:         reason,
		CreatedAt:      now,
	}
}

// MatchesSlot is the exact (court, date, start, end) match used for promotion
func (w *WaitlistEntry) MatchesSlot(courtID, date string, start, end types.TimeString) bool {
	return w.CourtID == courtID && w.Date == date && w.StartTime == start && w.EndTime == end
}

// Request restores the original booking request
func (w *WaitlistEntry) Request() BookingRequest {
	return BookingRequest{
		UserName:       w.UserName,
		UserContact:    w.UserContact,
		CourtID:        w.CourtID,
		CoachID:        w.CoachID,
		EquipmentItems: w.EquipmentItems,
		Date:           w.Date,
		StartTime:      w.StartTime,
		EndTime:        w.EndTime,
	}
}
