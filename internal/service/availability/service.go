package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/storage"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

// Service считает доступность кортов, тренеров и инвентаря
type Service struct {
	repo      Repository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(repo Repository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetAvailability возвращает доступность всех активных ресурсов на окно.
// Только чтение.
func (s *Service) GetAvailability(ctx context.Context, w Window) (*Availability, error) {
	date := types.ParseDate(w.Date)
	start, errStart := types.NewTimeStringFromString(w.StartTime)
	end, errEnd := types.NewTimeStringFromString(w.EndTime)
	if !date.IsValid() || errStart != nil || errEnd != nil || !start.IsBefore(end) {
		s.logger.Warn("GetAvailability: invalid window date=%s start=%s end=%s", w.Date, w.StartTime, w.EndTime)
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD and startTime before endTime (HH:MM)", ErrInvalidInput)
	}

	var result *Availability
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		bookings, err := s.repo.ListActiveBookingsByDate(ctx, date.String())
		if err != nil {
			return fmt.Errorf("list bookings: %w", err)
		}
		courts, err := s.repo.ListCourts(ctx)
		if err != nil {
			return fmt.Errorf("list courts: %w", err)
		}
		coaches, err := s.repo.ListCoaches(ctx)
		if err != nil {
			return fmt.Errorf("list coaches: %w", err)
		}
		equipment, err := s.repo.ListEquipment(ctx)
		if err != nil {
			return fmt.Errorf("list equipment: %w", err)
		}

		result = &Availability{
			Courts:    make([]domain.CourtAvailability, 0, len(courts)),
			Coaches:   make([]domain.CoachAvailability, 0, len(coaches)),
			Equipment: make([]domain.EquipmentAvailability, 0, len(equipment)),
		}

		for _, court := range courts {
			if !court.IsActive() {
				continue
			}
			result.Courts = append(result.Courts, domain.CourtAvailability{
				Court:     *court,
				Available: !courtBusy(bookings, court.ID, date.String(), start, end),
			})
		}

		for _, coach := range coaches {
			if !coach.Active {
				continue
			}
			available := coach.CoversWindow(date.DayOfWeek(), start, end) &&
				!coachBusy(bookings, coach.ID, date.String(), start, end)
			result.Coaches = append(result.Coaches, domain.CoachAvailability{
				Coach:     *coach,
				Available: available,
			})
		}

		for _, eq := range equipment {
			reserved := reservedUnits(bookings, eq.ID, date.String(), start, end)
			result.Equipment = append(result.Equipment, domain.EquipmentAvailability{
				Equipment: *eq,
				Available: max(0, eq.Quantity-reserved),
			})
		}
		return nil
	})
	if err != nil {
		s.logger.Error("GetAvailability: failed for date=%s %s-%s: %v", w.Date, w.StartTime, w.EndTime, err)
		return nil, fmt.Errorf("%w: GetAvailability - %w", ErrInternal, err)
	}

	s.logger.Info("GetAvailability: date=%s %s-%s courts=%d coaches=%d equipment=%d",
		date, start, end, len(result.Courts), len(result.Coaches), len(result.Equipment))
	return result, nil
}

// Check проверяет, можно ли забронировать ресурсы запроса, и возвращает корт.
// Дата и время запроса должны быть провалидированы. Вызывается внутри транзакции
// вызывающей стороны, вместе с последующей записью.
// Первый найденный конфликт возвращается как ошибка из errors.go.
func (s *Service) Check(ctx context.Context, req domain.BookingRequest) (*domain.Court, error) {
	bookings, err := s.repo.ListActiveBookingsByDate(ctx, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: Check - list bookings: %w", ErrInternal, err)
	}

	// 1. Корт
	court, err := s.repo.GetCourt(ctx, req.CourtID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: Check - get court: %w", ErrInternal, err)
	}
	if court == nil || !court.IsActive() {
		return nil, ErrCourtUnavailable
	}
	if courtBusy(bookings, court.ID, req.Date, req.StartTime, req.EndTime) {
		return nil, ErrCourtConflict
	}

	// 2. Тренер
	if req.HasCoach() {
		coach, err := s.repo.GetCoach(ctx, req.CoachID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: Check - get coach: %w", ErrInternal, err)
		}
		if coach == nil || !coach.Active {
			return nil, ErrCoachUnavailable
		}
		if coachBusy(bookings, coach.ID, req.Date, req.StartTime, req.EndTime) {
			return nil, ErrCoachConflict
		}
		if !coach.CoversWindow(types.ParseDate(req.Date).DayOfWeek(), req.StartTime, req.EndTime) {
			return nil, ErrCoachScheduleMismatch
		}
	}

	// 3. Инвентарь
	for _, item := range req.EquipmentItems {
		eq, err := s.repo.GetEquipment(ctx, item.EquipmentID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: Check - get equipment: %w", ErrInternal, err)
		}
		if eq == nil {
			return nil, fmt.Errorf("%w: %s", ErrEquipmentNotFound, item.EquipmentID)
		}

		reserved := reservedUnits(bookings, eq.ID, req.Date, req.StartTime, req.EndTime)
		requested := domain.UnitsOf(req.EquipmentItems, eq.ID)
		if reserved+requested > eq.Quantity {
			return nil, &ShortageError{
				EquipmentID: eq.ID,
				Name:        eq.Name,
				Requested:   requested,
				Available:   max(0, eq.Quantity-reserved),
			}
		}
	}

	return court, nil
}

func courtBusy(bookings []*domain.Booking, courtID, date string, start, end types.TimeString) bool {
	for _, b := range bookings {
		if b.CourtID == courtID && b.Occupies(date, start, end) {
			return true
		}
	}
	return false
}

func coachBusy(bookings []*domain.Booking, coachID, date string, start, end types.TimeString) bool {
	for _, b := range bookings {
		if b.CoachID == coachID && b.Occupies(date, start, end) {
			return true
		}
	}
	return false
}

func reservedUnits(bookings []*domain.Booking, equipmentID, date string, start, end types.TimeString) int {
	reserved := 0
	for _, b := range bookings {
		if b.Occupies(date, start, end) {
			reserved += domain.UnitsOf(b.EquipmentItems, equipmentID)
		}
	}
	return reserved
}
