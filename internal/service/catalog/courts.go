package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/service/catalog/models"
)

// ListCourts возвращает все корты, включая отключенные
func (s *Service) ListCourts(ctx context.Context) ([]*domain.Court, error) {
	courts, err := s.repo.ListCourts(ctx)
	if err != nil {
		s.logger.Error("ListCourts: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCourts - repository error: %w", ErrInternal, err)
	}
	return courts, nil
}

// CreateCourt создает корт
func (s *Service) CreateCourt(ctx context.Context, req *models.CreateCourtRequest) (*domain.Court, error) {
	if err := s.validate("CreateCourt", req); err != nil {
		return nil, err
	}

	court, err := s.repo.CreateCourt(ctx, req.ToDomain(domain.NewID(domain.PrefixCourt)))
	if err != nil {
		s.logger.Error("CreateCourt: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateCourt - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("CreateCourt: created court id=%s type=%s", court.ID, court.Type)
	return court, nil
}

// UpdateCourt применяет частичное обновление к корту
func (s *Service) UpdateCourt(ctx context.Context, id string, req *models.UpdateCourtRequest) (*domain.Court, error) {
	if err := s.validate("UpdateCourt", req); err != nil {
		return nil, err
	}

	return update(ctx, s, "UpdateCourt", id, ErrCourtNotFound, s.repo.GetCourt,
		func(c *domain.Court) error {
			req.Apply(c)
			return nil
		},
		s.repo.UpdateCourt,
	)
}
