package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/storage"
	"github.com/m04kA/SMC-CourtBooking/internal/service/catalog/models"
)

// ListPricingRules возвращает правила в порядке применения
func (s *Service) ListPricingRules(ctx context.Context) ([]*domain.PricingRule, error) {
	rules, err := s.repo.ListPricingRules(ctx)
	if err != nil {
		s.logger.Error("ListPricingRules: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPricingRules - repository error: %w", ErrInternal, err)
	}
	return rules, nil
}

// CreatePricingRule создает правило. Неизвестные type и mode отклоняются.
func (s *Service) CreatePricingRule(ctx context.Context, req *models.CreatePricingRuleRequest) (*domain.PricingRule, error) {
	if err := s.validate("CreatePricingRule", req); err != nil {
		return nil, err
	}

	mode := domain.RuleModeFlat
	if req.Mode != "" {
		mode = domain.RuleMode(req.Mode)
	}
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	rule := &domain.PricingRule{
		ID:          domain.NewID(domain.PrefixRule),
		Name:        req.Name,
		Description: req.Description,
		Type:        domain.RuleType(req.Type),
		Amount:      req.Amount,
		Mode:        mode,
		Enabled:     enabled,
	}
	if err := setCriteria(rule, req.Criteria); err != nil {
		s.logger.Warn("CreatePricingRule: %v", err)
		return nil, err
	}

	created, err := s.repo.CreatePricingRule(ctx, rule)
	if err != nil {
		s.logger.Error("CreatePricingRule: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreatePricingRule - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("CreatePricingRule: created rule id=%s type=%s mode=%s", created.ID, created.Type, created.Mode)
	return created, nil
}

// UpdatePricingRule применяет частичное обновление к правилу
func (s *Service) UpdatePricingRule(ctx context.Context, id string, req *models.UpdatePricingRuleRequest) (*domain.PricingRule, error) {
	if err := s.validate("UpdatePricingRule", req); err != nil {
		return nil, err
	}

	return update(ctx, s, "UpdatePricingRule", id, ErrRuleNotFound, s.repo.GetPricingRule,
		func(r *domain.PricingRule) error {
			if req.Name != nil {
				r.Name = *req.Name
			}
			if req.Description != nil {
				r.Description = *req.Description
			}
			if req.Amount != nil {
				r.Amount = *req.Amount
			}
			if req.Mode != nil {
				r.Mode = domain.RuleMode(*req.Mode)
			}
			if req.Enabled != nil {
				r.Enabled = *req.Enabled
			}

			typeChanged := req.Type != nil && domain.RuleType(*req.Type) != r.Type
			if req.Type != nil {
				r.Type = domain.RuleType(*req.Type)
			}
			if req.Criteria != nil || typeChanged {
				return setCriteria(r, req.Criteria)
			}
			if err := r.Validate(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidInput, err)
			}
			return nil
		},
		s.repo.UpdatePricingRule,
	)
}

// DeletePricingRule удаляет правило. Цены существующих бронирований не меняются.
func (s *Service) DeletePricingRule(ctx context.Context, id string) (*domain.PricingRule, error) {
	removed, err := s.repo.DeletePricingRule(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("DeletePricingRule: rule id=%s not found", id)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("DeletePricingRule: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: DeletePricingRule - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("DeletePricingRule: deleted rule id=%s", id)
	return removed, nil
}

// setCriteria декодирует критерии под тип правила и проверяет правило целиком
func setCriteria(rule *domain.PricingRule, raw []byte) error {
	criteria, err := domain.DecodeCriteria(rule.Type, raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	rule.Criteria = criteria
	if err := rule.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
