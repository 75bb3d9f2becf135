package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/service/catalog/models"
)

func (s *Service) ListEquipment(ctx context.Context) ([]*domain.Equipment, error) {
	items, err := s.repo.ListEquipment(ctx)
	if err != nil {
		s.logger.Error("ListEquipment: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListEquipment - repository error: %w", ErrInternal, err)
	}
	return items, nil
}

func (s *Service) CreateEquipment(ctx context.Context, req *models.CreateEquipmentRequest) (*domain.Equipment, error) {
	if err := s.validate("CreateEquipment", req); err != nil {
		return nil, err
	}

	eq, err := s.repo.CreateEquipment(ctx, req.ToDomain(domain.NewID(domain.PrefixEquipment)))
	if err != nil {
		s.logger.Error("CreateEquipment: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateEquipment - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("CreateEquipment: created equipment id=%s quantity=%d", eq.ID, eq.Quantity)
	return eq, nil
}

// UpdateEquipment меняет только переданные поля. Уменьшение quantity не отменяет
// существующие бронирования, но ограничивает новые.
func (s *Service) UpdateEquipment(ctx context.Context, id string, req *models.UpdateEquipmentRequest) (*domain.Equipment, error) {
	if err := s.validate("UpdateEquipment", req); err != nil {
		return nil, err
	}

	return update(ctx, s, "UpdateEquipment", id, ErrEquipmentNotFound, s.repo.GetEquipment,
		func(e *domain.Equipment) error {
			req.Apply(e)
			return nil
		},
		s.repo.UpdateEquipment,
	)
}
