package placement

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// AvailabilityChecker проверка конфликтов ресурсов
type AvailabilityChecker interface {
	Check(ctx context.Context, req domain.BookingRequest) (*domain.Court, error)
}

// PriceCalculator интерфейс калькулятора цены
type PriceCalculator interface {
	Calculate(ctx context.Context, req domain.BookingRequest) (domain.PriceBreakdown, error)
}

// BookingRepository запись бронирований
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время в UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
