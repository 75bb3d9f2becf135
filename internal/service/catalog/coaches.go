package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/service/catalog/models"
)

func (s *Service) ListCoaches(ctx context.Context) ([]*domain.Coach, error) {
	coaches, err := s.repo.ListCoaches(ctx)
	if err != nil {
		s.logger.Error("ListCoaches: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCoaches - repository error: %w", ErrInternal, err)
	}
	return coaches, nil
}

func (s *Service) CreateCoach(ctx context.Context, req *models.CreateCoachRequest) (*domain.Coach, error) {
	if err := s.validate("CreateCoach", req); err != nil {
		return nil, err
	}
	if err := validateSchedule(req.Availability); err != nil {
		s.logger.Warn("CreateCoach: %v", err)
		return nil, err
	}

	coach, err := s.repo.CreateCoach(ctx, req.ToDomain(domain.NewID(domain.PrefixCoach)))
	if err != nil {
		s.logger.Error("CreateCoach: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateCoach - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("CreateCoach: created coach id=%s", coach.ID)
	return coach, nil
}

func (s *Service) UpdateCoach(ctx context.Context, id string, req *models.UpdateCoachRequest) (*domain.Coach, error) {
	if err := s.validate("UpdateCoach", req); err != nil {
		return nil, err
	}
	if req.Availability != nil {
		if err := validateSchedule(*req.Availability); err != nil {
			s.logger.Warn("UpdateCoach: %v", err)
			return nil, err
		}
	}

	return update(ctx, s, "UpdateCoach", id, ErrCoachNotFound, s.repo.GetCoach,
		func(c *domain.Coach) error {
			req.Apply(c)
			return nil
		},
		s.repo.UpdateCoach,
	)
}

// validateSchedule проверяет дни недели. Формат и порядок слотов проверяются при разборе JSON.
func validateSchedule(days []domain.WeeklyAvailability) error {
	for _, day := range days {
		if day.DayOfWeek < 0 || day.DayOfWeek > 6 {
			return fmt.Errorf("%w: dayOfWeek must be between 0 and 6, got %d", ErrInvalidInput, day.DayOfWeek)
		}
		for _, slot := range day.Slots {
			if !slot.Start.IsBefore(slot.End) {
				return fmt.Errorf("%w: slot %s must start before it ends", ErrInvalidInput, slot)
			}
		}
	}
	return nil
}
