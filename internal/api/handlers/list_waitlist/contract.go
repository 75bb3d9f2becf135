package list_waitlist

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

type BookingService interface {
	ListWaitlist(ctx context.Context) ([]*domain.WaitlistEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
