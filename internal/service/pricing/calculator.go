package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/storage"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

// Calculator считает стоимость бронирования по ставкам ресурсов и правилам ценообразования.
// Результат зависит только от запроса и текущего состояния каталога.
type Calculator struct {
	catalog CatalogReader
}

// NewCalculator создает калькулятор поверх каталога
func NewCalculator(catalog CatalogReader) *Calculator {
	return &Calculator{catalog: catalog}
}

// Calculate возвращает детализацию цены для запроса.
// Время начала и окончания должны быть заранее провалидированы.
// Неизвестные корт, тренер и инвентарь дают нулевой вклад.
func (c *Calculator) Calculate(ctx context.Context, req domain.BookingRequest) (domain.PriceBreakdown, error) {
	// 1. Разрешаем корт и тренера
	court, err := lookup(ctx, req.CourtID, c.catalog.GetCourt)
	if err != nil {
		return domain.PriceBreakdown{}, fmt.Errorf("%w: Calculate - court %s: %w", ErrInternal, req.CourtID, err)
	}

	var coach *domain.Coach
	if req.HasCoach() {
		coach, err = lookup(ctx, req.CoachID, c.catalog.GetCoach)
		if err != nil {
			return domain.PriceBreakdown{}, fmt.Errorf("%w: Calculate - coach %s: %w", ErrInternal, req.CoachID, err)
		}
	}

	hours := types.DurationHours(req.StartTime, req.EndTime)

	// 2. Базовая стоимость
	equipmentCost := 0.0
	for _, item := range req.EquipmentItems {
		eq, err := lookup(ctx, item.EquipmentID, c.catalog.GetEquipment)
		if err != nil {
			return domain.PriceBreakdown{}, fmt.Errorf("%w: Calculate - equipment %s: %w", ErrInternal, item.EquipmentID, err)
		}
		if eq == nil {
			continue
		}
		equipmentCost += eq.RentalFee * float64(item.Quantity) * hours
	}

	courtCost := 0.0
	if court != nil {
		courtCost = court.BaseRate * hours
	}
	coachCost := 0.0
	if coach != nil {
		coachCost = coach.HourlyRate * hours
	}
	baseTotal := courtCost + equipmentCost + coachCost

	// 3. Контекст правил. День недели берется из нестрогого разбора даты.
	pctx := domain.PricingContext{
		DayOfWeek:      types.ParseDateLoose(req.Date).DayOfWeek(),
		StartTime:      req.StartTime,
		Court:          court,
		EquipmentUnits: domain.TotalUnits(req.EquipmentItems),
		HasCoach:       req.HasCoach(),
		BaseTotal:      baseTotal,
	}

	rules, err := c.catalog.ListPricingRules(ctx)
	if err != nil {
		return domain.PriceBreakdown{}, fmt.Errorf("%w: Calculate - pricing rules: %w", ErrInternal, err)
	}

	// 4. Применяем правила в порядке каталога
	applied := make([]domain.AppliedRule, 0, len(rules))
	adjustments := 0.0
	for _, rule := range rules {
		if !rule.Matches(pctx) {
			continue
		}
		delta := rule.Delta(pctx)
		if delta == 0 {
			continue
		}
		applied = append(applied, domain.AppliedRule{
			RuleID: rule.ID,
			Name:   rule.Name,
			Delta:  delta,
			Mode:   rule.Mode,
		})
		adjustments += delta
	}

	return domain.PriceBreakdown{
		Hours:        hours,
		Court:        courtCost,
		Equipment:    equipmentCost,
		Coach:        coachCost,
		Adjustments:  adjustments,
		AppliedRules: applied,
		BaseTotal:    baseTotal,
		Total:        math.Max(0, baseTotal+adjustments),
	}, nil
}

// lookup возвращает nil без ошибки, если записи нет
func lookup[T any](ctx context.Context, id string, get func(context.Context, string) (*T, error)) (*T, error) {
	if id == "" {
		return nil, nil
	}
	v, err := get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	return v, err
}
