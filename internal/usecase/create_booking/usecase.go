package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/integrations/eventbus"
	"github.com/m04kA/SMC-CourtBooking/internal/service/availability"
	"github.com/m04kA/SMC-CourtBooking/pkg/metrics"
	"github.com/m04kA/SMC-CourtBooking/pkg/validation"
)

// UseCase use case для создания бронирования
type UseCase struct {
	placer       Placer
	waitlistRepo WaitlistRepository
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	validator    *validation.Validator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	placer Placer,
	waitlistRepo WaitlistRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metricsCollector Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		placer:       placer,
		waitlistRepo: waitlistRepo,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metricsCollector,
		validator:    validation.New(),
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности и запись выполняются в одной сериализуемой транзакции.
// Постановка в лист ожидания считается успешным исходом, а не ошибкой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: court=%s, coach=%s, date=%s, time=%s-%s, user=%s, waitlist=%t",
		req.CourtID, req.CoachID, req.Date, req.StartTime, req.EndTime, req.UserName, req.JoinWaitlist)

	// 1. Валидация входных данных
	if err := validateRequest(uc.validator, req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	bookingReq := req.ToDomain()
	var result *Response

	// 2. Проверка ресурсов, расчет цены и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.placer.Place(txCtx, bookingReq, false)
		if err == nil {
			result = &Response{Booking: booking}
			return nil
		}
		if !availability.IsConflict(err) {
			uc.logger.Error("CreateBooking: failed to place booking: %v", err)
			return fmt.Errorf("%w: failed to place booking: %w", ErrInternal, err)
		}

		reason := availability.Reason(err)

		// 2.1. Ресурсы заняты, лист ожидания не запрошен
		if !req.JoinWaitlist {
			uc.logger.Warn("CreateBooking: rejected: %s", reason)
			return &RejectionError{Err: ErrSlotNotAvailable, Cause: err, Message: reason}
		}

		// 2.2. Ставим запрос в лист ожидания с причиной отказа
		entry := domain.NewWaitlistEntry(bookingReq, reason, uc.placer.Now())
		created, err := uc.waitlistRepo.CreateWaitlistEntry(txCtx, entry)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create waitlist entry: %v", err)
			return fmt.Errorf("%w: failed to create waitlist entry: %w", ErrInternal, err)
		}

		result = &Response{
			Waitlisted: true,
			Entry:      created,
			Message:    "Slot unavailable (" + reason + "), added to waitlist",
		}
		return nil
	})

	if err != nil {
		var rejection *RejectionError
		if errors.As(err, &rejection) {
			uc.metrics.RecordBooking(metrics.OutcomeRejected)
			return nil, err
		}
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %w", ErrInternal, err)
	}

	// 3. События и метрики после фиксации транзакции
	if result.Waitlisted {
		uc.logger.Info("CreateBooking: waitlisted entry id=%s (%s)", result.Entry.ID, result.Entry.Reason)
		uc.metrics.RecordBooking(metrics.OutcomeWaitlisted)
		uc.publish(ctx, eventbus.KeyWaitlistJoined, eventbus.NewWaitlistEvent(result.Entry, uc.placer.Now()))
		return result, nil
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s total=%.2f", result.Booking.ID, result.Booking.Price.Total)
	uc.metrics.RecordBooking(metrics.OutcomeCreated)
	uc.publish(ctx, eventbus.KeyBookingCreated, eventbus.NewBookingEvent(eventbus.KeyBookingCreated, result.Booking, uc.placer.Now()))
	return result, nil
}

func (uc *UseCase) publish(ctx context.Context, key string, event interface{}) {
	if err := uc.publisher.Publish(ctx, key, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish %s: %v", key, err)
	}
}
