package eventbus

import (
	"time"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// Routing keys
const (
	KeyBookingCreated   = "booking.created"
	KeyBookingCancelled = "booking.cancelled"
	KeyBookingPromoted  = "booking.promoted"
	KeyWaitlistJoined   = "waitlist.joined"
)

// BookingEvent событие жизненного цикла бронирования
type BookingEvent struct {
	Type                 string    `json:"type"`
	BookingID            string    `json:"bookingId"`
	UserName             string    `json:"userName"`
	CourtID              string    `json:"courtId"`
	CoachID              string    `json:"coachId,omitempty"`
	Date                 string    `json:"date"`
	StartTime            string    `json:"startTime"`
	EndTime              string    `json:"endTime"`
	Status               string    `json:"status"`
	Total                float64   `json:"total"`
	PromotedFromWaitlist bool      `json:"promotedFromWaitlist,omitempty"`
	OccurredAt           time.Time `json:"occurredAt"`
}

// WaitlistEvent событие постановки в лист ожидания
type WaitlistEvent struct {
	Type       string    `json:"type"`
	EntryID    string    `json:"entryId"`
	UserName   string    `json:"userName"`
	CourtID    string    `json:"courtId"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewBookingEvent строит событие из бронирования
func NewBookingEvent(key string, b *domain.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		Type:                 key,
		BookingID:            b.ID,
		UserName:             b.UserName,
		CourtID:              b.CourtID,
		CoachID:              b.CoachID,
		Date:                 b.Date,
		StartTime:            b.StartTime.String(),
		EndTime:              b.EndTime.String(),
		Status:               string(b.Status),
		Total:                b.Price.Total,
		PromotedFromWaitlist: b.PromotedFromWaitlist,
		OccurredAt:           at,
	}
}

// NewWaitlistEvent строит событие из записи листа ожидания
func NewWaitlistEvent(w *domain.WaitlistEntry, at time.Time) WaitlistEvent {
	return WaitlistEvent{
		Type:       KeyWaitlistJoined,
		EntryID:    w.ID,
		UserName:   w.UserName,
		CourtID:    w.CourtID,
		Date:       w.Date,
		StartTime:  w.StartTime.String(),
		EndTime:    w.EndTime.String(),
		Reason:     w.Reason,
		OccurredAt: at,
	}
}
