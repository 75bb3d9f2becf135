package cancel_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований и листа ожидания
type BookingRepository interface {
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error
	FirstWaitlistMatch(ctx context.Context, courtID, date string, start, end types.TimeString) (*domain.WaitlistEntry, error)
	DeleteWaitlistEntry(ctx context.Context, id string) error
}

// Placer общий конвейер проверки, расчета цены и записи бронирования
type Placer interface {
	Place(ctx context.Context, req domain.BookingRequest, promoted bool) (*domain.Booking, error)
	Now() time.Time
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикует события жизненного цикла бронирований
type EventPublisher interface {
	Publish(ctx context.Context, key string, event interface{}) error
}

// Metrics учет исходов бронирования
type Metrics interface {
	RecordBooking(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
