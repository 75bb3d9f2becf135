package placement

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/service/availability"
)

// Service проводит запрос через проверку доступности, расчет цены и запись.
// Общий конвейер для создания бронирования и продвижения из листа ожидания.
type Service struct {
	checker      AvailabilityChecker
	calculator   PriceCalculator
	bookingRepo  BookingRepository
	timeProvider TimeProvider
}

// NewService создает новый экземпляр сервиса размещения
func NewService(checker AvailabilityChecker, calculator PriceCalculator, bookingRepo BookingRepository) *Service {
	return &Service{
		checker:      checker,
		calculator:   calculator,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Now возвращает текущее время источника
func (s *Service) Now() time.Time {
	return s.timeProvider.Now()
}

// Place создает подтвержденное бронирование, если все ресурсы свободны.
// Вызывается внутри сериализуемой транзакции вызывающей стороны: проверка и запись
// должны быть атомарны. При конфликте возвращается ошибка из пакета availability,
// и ничего не записывается.
func (s *Service) Place(ctx context.Context, req domain.BookingRequest, promoted bool) (*domain.Booking, error) {
	// 1. Конфликты корта, тренера и инвентаря
	court, err := s.checker.Check(ctx, req)
	if err != nil {
		if availability.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: Place - check: %w", ErrInternal, err)
	}

	// 2. Цена
	price, err := s.calculator.Calculate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: Place - price: %w", ErrInternal, err)
	}

	// 3. Запись
	booking := domain.NewBooking(req, court, price, s.timeProvider.Now())
	booking.PromotedFromWaitlist = promoted

	created, err := s.bookingRepo.CreateBooking(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("%w: Place - create booking: %w", ErrInternal, err)
	}
	return created, nil
}
