package cancel_booking

import "github.com/m04kA/SMC-CourtBooking/internal/domain"

// Response отмененное бронирование и, если была, продвинутая запись листа ожидания
type Response struct {
	Booking  *domain.Booking
	Promoted *domain.Booking
}
