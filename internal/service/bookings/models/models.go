package models

import (
	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

// QuoteRequest запрос на предварительный расчет цены.
// Обязательны только startTime и endTime.
type QuoteRequest struct {
	CourtID        string                 `json:"courtId"`
	CoachID        string                 `json:"coachId,omitempty"`
	EquipmentItems []domain.EquipmentItem `json:"equipmentItems,omitempty"`
	Date           string                 `json:"date"`
	StartTime      string                 `json:"startTime"`
	EndTime        string                 `json:"endTime"`
}

// ToDomain конвертирует запрос после валидации
func (r *QuoteRequest) ToDomain() domain.BookingRequest {
	return domain.BookingRequest{
		CourtID:        r.CourtID,
		CoachID:        r.CoachID,
		EquipmentItems: r.EquipmentItems,
		Date:           r.Date,
		StartTime:      types.TimeString(r.StartTime),
		EndTime:        types.TimeString(r.EndTime),
	}
}
