package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/storage"
	"github.com/m04kA/SMC-CourtBooking/internal/integrations/eventbus"
	"github.com/m04kA/SMC-CourtBooking/internal/service/availability"
	"github.com/m04kA/SMC-CourtBooking/pkg/metrics"
)

// UseCase use case для отмены бронирования с продвижением листа ожидания
type UseCase struct {
	bookingRepo BookingRepository
	placer      Placer
	txManager   TransactionManager
	publisher   EventPublisher
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	placer Placer,
	txManager TransactionManager,
	publisher EventPublisher,
	metricsCollector Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		placer:      placer,
		txManager:   txManager,
		publisher:   publisher,
		metrics:     metricsCollector,
		logger:      logger,
	}
}

// Execute отменяет бронирование и пытается продвинуть первую запись листа ожидания
// на освободившийся слот. Повторная отмена разрешена.
func (uc *UseCase) Execute(ctx context.Context, bookingID string) (*Response, error) {
	uc.logger.Info("CancelBooking: booking id=%s", bookingID)

	var result Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование
		booking, err := uc.bookingRepo.GetBooking(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%s not found", bookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// 2. Меняем статус
		if err := uc.bookingRepo.UpdateBookingStatus(txCtx, bookingID, domain.BookingStatusCancelled); err != nil {
			uc.logger.Error("CancelBooking: failed to update status of booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: failed to update status: %w", ErrInternal, err)
		}
		booking.Cancel()
		result.Booking = booking

		// 3. Продвижение листа ожидания
		promoted, err := uc.promote(txCtx, booking)
		if err != nil {
			return err
		}
		result.Promoted = promoted
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CancelBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %w", ErrInternal, err)
	}

	// 4. События и метрики после фиксации транзакции
	now := uc.placer.Now()
	uc.metrics.RecordBooking(metrics.OutcomeCancelled)
	uc.publish(ctx, eventbus.KeyBookingCancelled, eventbus.NewBookingEvent(eventbus.KeyBookingCancelled, result.Booking, now))

	if result.Promoted != nil {
		uc.logger.Info("CancelBooking: promoted booking id=%s from waitlist", result.Promoted.ID)
		uc.metrics.RecordBooking(metrics.OutcomePromoted)
		uc.publish(ctx, eventbus.KeyBookingPromoted, eventbus.NewBookingEvent(eventbus.KeyBookingPromoted, result.Promoted, now))
	}

	uc.logger.Info("CancelBooking: successfully cancelled booking id=%s", bookingID)
	return &result, nil
}

// promote размещает самую раннюю запись листа ожидания с точным совпадением слота.
// Если запрос записи все еще не проходит проверки, запись остается в листе без ошибки.
func (uc *UseCase) promote(ctx context.Context, cancelled *domain.Booking) (*domain.Booking, error) {
	entry, err := uc.bookingRepo.FirstWaitlistMatch(ctx, cancelled.CourtID, cancelled.Date, cancelled.StartTime, cancelled.EndTime)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		uc.logger.Error("CancelBooking: failed to look up waitlist: %v", err)
		return nil, fmt.Errorf("%w: failed to look up waitlist: %w", ErrInternal, err)
	}

	booking, err := uc.placer.Place(ctx, entry.Request(), true)
	if err != nil {
		if availability.IsConflict(err) {
			uc.logger.Info("CancelBooking: waitlist entry id=%s not promoted: %s", entry.ID, availability.Reason(err))
			return nil, nil
		}
		uc.logger.Error("CancelBooking: failed to promote waitlist entry id=%s: %v", entry.ID, err)
		return nil, fmt.Errorf("%w: failed to promote waitlist entry: %w", ErrInternal, err)
	}

	if err := uc.bookingRepo.DeleteWaitlistEntry(ctx, entry.ID); err != nil {
		uc.logger.Error("CancelBooking: failed to delete waitlist entry id=%s: %v", entry.ID, err)
		return nil, fmt.Errorf("%w: failed to delete waitlist entry: %w", ErrInternal, err)
	}

	return booking, nil
}

func (uc *UseCase) publish(ctx context.Context, key string, event interface{}) {
	if err := uc.publisher.Publish(ctx, key, event); err != nil {
		uc.logger.Warn("CancelBooking: failed to publish %s: %v", key, err)
	}
}
