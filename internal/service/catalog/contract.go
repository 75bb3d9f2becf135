package catalog

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// Repository интерфейс репозитория каталога ресурсов
type Repository interface {
	ListCourts(ctx context.Context) ([]*domain.Court, error)
	GetCourt(ctx context.Context, id string) (*domain.Court, error)
	CreateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error)
	UpdateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error)

	ListEquipment(ctx context.Context) ([]*domain.Equipment, error)
	GetEquipment(ctx context.Context, id string) (*domain.Equipment, error)
	CreateEquipment(ctx context.Context, eq *domain.Equipment) (*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, eq *domain.Equipment) (*domain.Equipment, error)

	ListCoaches(ctx context.Context) ([]*domain.Coach, error)
	GetCoach(ctx context.Context, id string) (*domain.Coach, error)
	CreateCoach(ctx context.Context, coach *domain.Coach) (*domain.Coach, error)
	UpdateCoach(ctx context.Context, coach *domain.Coach) (*domain.Coach, error)

	ListPricingRules(ctx context.Context) ([]*domain.PricingRule, error)
	GetPricingRule(ctx context.Context, id string) (*domain.PricingRule, error)
	CreatePricingRule(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error)
	UpdatePricingRule(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error)
	DeletePricingRule(ctx context.Context, id string) (*domain.PricingRule, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
