package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// Placer общий конвейер проверки, расчета цены и записи бронирования
type Placer interface {
	Place(ctx context.Context, req domain.BookingRequest, promoted bool) (*domain.Booking, error)
	Now() time.Time
}

// WaitlistRepository интерфейс репозитория листа ожидания
type WaitlistRepository interface {
	CreateWaitlistEntry(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error)
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
