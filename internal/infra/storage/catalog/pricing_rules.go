package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/storage"
	"github.com/m04kA/SMC-CourtBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBooking/pkg/psqlbuilder"
)

var ruleColumns = []string{"id", "name", "description", "type", "criteria", "amount", "mode", "enabled"}

// ListPricingRules возвращает правила в порядке создания, он же порядок применения
func (r *Repository) ListPricingRules(ctx context.Context) ([]*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("pricing_rules").
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPricingRules - build select query: %w", storage.ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPricingRules - execute query: %w", storage.ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.PricingRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("ListPricingRules: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPricingRules - rows error: %w", storage.ErrScanRow, err)
	}
	return rules, nil
}

// GetPricingRule получает правило по ID
func (r *Repository) GetPricingRule(ctx context.Context, id string) (*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("pricing_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetPricingRule - build select query: %w", storage.ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: pricing rule %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("GetPricingRule: %w", err)
	}
	return rule, nil
}

// CreatePricingRule сохраняет новое правило, критерии хранятся в JSONB
func (r *Repository) CreatePricingRule(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	criteria, err := encodeCriteria(rule.Criteria)
	if err != nil {
		return nil, fmt.Errorf("%w: CreatePricingRule - criteria: %w", storage.ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("pricing_rules").
		Columns(ruleColumns...).
		Values(rule.ID, rule.Name, rule.Description, rule.Type, criteria, rule.Amount, rule.Mode, rule.Enabled).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreatePricingRule - build insert query: %w", storage.ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: CreatePricingRule - execute insert: %w", storage.ErrExecQuery, err)
	}
	return rule, nil
}

// UpdatePricingRule перезаписывает все поля правила, кроме ID
func (r *Repository) UpdatePricingRule(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error) {
	criteria, err := encodeCriteria(rule.Criteria)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdatePricingRule - criteria: %w", storage.ErrEncode, err)
	}

	query, args, err := psqlbuilder.Update("pricing_rules").
		Set("name", rule.Name).
		Set("description", rule.Description).
		Set("type", rule.Type).
		Set("criteria", criteria).
		Set("amount", rule.Amount).
		Set("mode", rule.Mode).
		Set("enabled", rule.Enabled).
		Where(squirrel.Eq{"id": rule.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdatePricingRule - build update query: %w", storage.ErrBuildQuery, err)
	}

	if err := r.execAffectingOne(ctx, "UpdatePricingRule", "pricing rule "+rule.ID, query, args); err != nil {
		return nil, err
	}
	return rule, nil
}

// DeletePricingRule удаляет правило и возвращает удаленную запись
func (r *Repository) DeletePricingRule(ctx context.Context, id string) (*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("pricing_rules").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(ruleColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: DeletePricingRule - build delete query: %w", storage.ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: pricing rule %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("DeletePricingRule: %w", err)
	}
	return rule, nil
}

func encodeCriteria(c domain.Criteria) (string, error) {
	if c == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func scanRule(row scanner) (*domain.PricingRule, error) {
	var (
		rule     domain.PricingRule
		criteria []byte
	)
	err := row.Scan(&rule.ID, &rule.Name, &rule.Description, &rule.Type, &criteria, &rule.Amount, &rule.Mode, &rule.Enabled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: scan pricing rule: %w", storage.ErrScanRow, err)
	}

	rule.Criteria, err = domain.DecodeCriteria(rule.Type, criteria)
	if err != nil {
		return nil, fmt.Errorf("%w: pricing rule %s criteria: %w", storage.ErrEncode, rule.ID, err)
	}
	return &rule, nil
}
