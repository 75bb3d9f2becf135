package pricing

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// CatalogReader чтение каталога ресурсов и правил ценообразования
type CatalogReader interface {
	GetCourt(ctx context.Context, id string) (*domain.Court, error)
	GetCoach(ctx context.Context, id string) (*domain.Coach, error)
	GetEquipment(ctx context.Context, id string) (*domain.Equipment, error)
	ListPricingRules(ctx context.Context) ([]*domain.PricingRule, error)
}
