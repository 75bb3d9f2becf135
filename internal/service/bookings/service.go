package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/storage"
	"github.com/m04kA/SMC-CourtBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

// Service сервис чтения бронирований и расчета цены
type Service struct {
	bookingRepo BookingRepository
	calculator  PriceCalculator
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	calculator PriceCalculator,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		calculator:  calculator,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// List возвращает все бронирования без фильтрации, от старых к новым
func (s *Service) List(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.ListBookings(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return bookings, nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetBooking(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}
	return booking, nil
}

// ListWaitlist возвращает лист ожидания в порядке постановки
func (s *Service) ListWaitlist(ctx context.Context) ([]*domain.WaitlistEntry, error) {
	entries, err := s.bookingRepo.ListWaitlist(ctx)
	if err != nil {
		s.logger.Error("ListWaitlist: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListWaitlist - repository error: %w", ErrInternal, err)
	}
	return entries, nil
}

// Quote считает цену без проверки доступности и без сохранения
func (s *Service) Quote(ctx context.Context, req *models.QuoteRequest) (*domain.PriceBreakdown, error) {
	if err := validateQuote(req); err != nil {
		s.logger.Warn("Quote: validation failed: %v", err)
		return nil, err
	}

	var breakdown domain.PriceBreakdown
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		breakdown, err = s.calculator.Calculate(ctx, req.ToDomain())
		return err
	})
	if err != nil {
		s.logger.Error("Quote: failed to calculate price: %v", err)
		return nil, fmt.Errorf("%w: Quote - calculate: %w", ErrInternal, err)
	}

	s.metrics.RecordQuote()
	s.logger.Info("Quote: court=%s %s %s-%s total=%.2f", req.CourtID, req.Date, req.StartTime, req.EndTime, breakdown.Total)
	return &breakdown, nil
}

func validateQuote(req *models.QuoteRequest) error {
	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return fmt.Errorf("%w: startTime must be HH:MM", ErrInvalidInput)
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return fmt.Errorf("%w: endTime must be HH:MM", ErrInvalidInput)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}
	for _, item := range req.EquipmentItems {
		if item.Quantity < 1 {
			return fmt.Errorf("%w: equipment quantity must be at least 1", ErrInvalidInput)
		}
	}
	return nil
}
