package cancel_booking

import (
	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	cancelBooking "github.com/m04kA/SMC-CourtBooking/internal/usecase/cancel_booking"
)

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Booking  *domain.Booking `json:"booking"`
	Promoted *domain.Booking `json:"promoted,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		Booking:  resp.Booking,
		Promoted: resp.Promoted,
	}
}
