package get_availability

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/service/availability"
)

type AvailabilityService interface {
	GetAvailability(ctx context.Context, w availability.Window) (*availability.Availability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
