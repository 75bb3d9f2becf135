package create_booking

import (
	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-CourtBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID        string                 `json:"courtId"`
	Date           string                 `json:"date"`      // "2024-06-10"
	StartTime      string                 `json:"startTime"` // "18:00"
	EndTime        string                 `json:"endTime"`   // "19:00"
	UserName       string                 `json:"userName"`
	UserContact    string                 `json:"userContact,omitempty"`
	CoachID        string                 `json:"coachId,omitempty"`
	EquipmentItems []domain.EquipmentItem `json:"equipmentItems,omitempty"`
	JoinWaitlist   bool                   `json:"joinWaitlist,omitempty"`
}

// WaitlistedResponse HTTP response model для постановки в лист ожидания
type WaitlistedResponse struct {
	Waitlisted bool                  `json:"waitlisted"`
	Entry      *domain.WaitlistEntry `json:"entry"`
	Message    string                `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Date:           r.Date,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		CourtID:        r.CourtID,
		UserName:       r.UserName,
		UserContact:    r.UserContact,
		CoachID:        r.CoachID,
		EquipmentItems: r.EquipmentItems,
		JoinWaitlist:   r.JoinWaitlist,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *WaitlistedResponse {
	return &WaitlistedResponse{
		Waitlisted: resp.Waitlisted,
		Entry:      resp.Entry,
		Message:    resp.Message,
	}
}
