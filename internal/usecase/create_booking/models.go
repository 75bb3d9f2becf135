package create_booking

import (
	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

// Request модель запроса на создание бронирования.
// Порядок обязательных полей задает порядок в сообщении "Missing fields".
type Request struct {
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
	CourtID   string `json:"courtId" validate:"required"`
	UserName  string `json:"userName" validate:"required"`

	UserContact    string                 `json:"userContact"`
	CoachID        string                 `json:"coachId"`
	EquipmentItems []domain.EquipmentItem `json:"equipmentItems"`
	JoinWaitlist   bool                   `json:"joinWaitlist"`
}

// ToDomain конвертирует запрос после валидации
func (r *Request) ToDomain() domain.BookingRequest {
	return domain.BookingRequest{
		UserName:       r.UserName,
		UserContact:    r.UserContact,
		CourtID:        r.CourtID,
		CoachID:        r.CoachID,
		EquipmentItems: r.EquipmentItems,
		Date:           r.Date,
		StartTime:      types.TimeString(r.StartTime),
		EndTime:        types.TimeString(r.EndTime),
	}
}

// Response результат создания: либо бронирование, либо запись в листе ожидания
type Response struct {
	Booking    *domain.Booking
	Waitlisted bool
	Entry      *domain.WaitlistEntry
	Message    string
}
