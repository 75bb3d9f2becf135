package bookings

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований и листа ожидания
type BookingRepository interface {
	ListBookings(ctx context.Context) ([]*domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	ListWaitlist(ctx context.Context) ([]*domain.WaitlistEntry, error)
}

// PriceCalculator интерфейс калькулятора цены
type PriceCalculator interface {
	Calculate(ctx context.Context, req domain.BookingRequest) (domain.PriceBreakdown, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс для бизнес-метрик
type Metrics interface {
	RecordQuote()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
