package availability

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// Repository чтение каталога и активных бронирований
type Repository interface {
	ListCourts(ctx context.Context) ([]*domain.Court, error)
	ListCoaches(ctx context.Context) ([]*domain.Coach, error)
	ListEquipment(ctx context.Context) ([]*domain.Equipment, error)
	GetCourt(ctx context.Context, id string) (*domain.Court, error)
	GetCoach(ctx context.Context, id string) (*domain.Coach, error)
	GetEquipment(ctx context.Context, id string) (*domain.Equipment, error)
	ListActiveBookingsByDate(ctx context.Context, date string) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
