package pricing_rules

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/service/catalog/models"
)

type PricingRuleService interface {
	ListPricingRules(ctx context.Context) ([]*domain.PricingRule, error)
	CreatePricingRule(ctx context.Context, req *models.CreatePricingRuleRequest) (*domain.PricingRule, error)
	UpdatePricingRule(ctx context.Context, id string, req *models.UpdatePricingRuleRequest) (*domain.PricingRule, error)
	DeletePricingRule(ctx context.Context, id string) (*domain.PricingRule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
