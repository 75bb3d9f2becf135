package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/storage"
	"github.com/m04kA/SMC-CourtBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBooking/pkg/psqlbuilder"
)

var equipmentColumns = []string{"id", "name", "quantity", "rental_fee"}

// ListEquipment возвращает весь инвентарь
func (r *Repository) ListEquipment(ctx context.Context) ([]*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(equipmentColumns...).
		From("equipment").
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEquipment - build select query: %w", storage.ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEquipment - execute query: %w", storage.ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.Equipment, 0)
	for rows.Next() {
		eq, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListEquipment - scan equipment: %w", storage.ErrScanRow, err)
		}
		items = append(items, eq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEquipment - rows error: %w", storage.ErrScanRow, err)
	}
	return items, nil
}

// GetEquipment получает позицию инвентаря по ID
func (r *Repository) GetEquipment(ctx context.Context, id string) (*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(equipmentColumns...).
		From("equipment").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetEquipment - build select query: %w", storage.ErrBuildQuery, err)
	}

	eq, err := scanEquipment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: equipment %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetEquipment - scan equipment: %w", storage.ErrScanRow, err)
	}
	return eq, nil
}

// CreateEquipment сохраняет новую позицию инвентаря
func (r *Repository) CreateEquipment(ctx context.Context, eq *domain.Equipment) (*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("equipment").
		Columns(equipmentColumns...).
		Values(eq.ID, eq.Name, eq.Quantity, eq.RentalFee).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateEquipment - build insert query: %w", storage.ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: CreateEquipment - execute insert: %w", storage.ErrExecQuery, err)
	}

	created := *eq
	return &created, nil
}

// UpdateEquipment перезаписывает все поля инвентаря, кроме ID
func (r *Repository) UpdateEquipment(ctx context.Context, eq *domain.Equipment) (*domain.Equipment, error) {
	query, args, err := psqlbuilder.Update("equipment").
		Set("name", eq.Name).
		Set("quantity", eq.Quantity).
		Set("rental_fee", eq.RentalFee).
		Where(squirrel.Eq{"id": eq.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateEquipment - build update query: %w", storage.ErrBuildQuery, err)
	}

	if err := r.execAffectingOne(ctx, "UpdateEquipment", "equipment "+eq.ID, query, args); err != nil {
		return nil, err
	}

	updated := *eq
	return &updated, nil
}

func scanEquipment(row scanner) (*domain.Equipment, error) {
	var eq domain.Equipment
	if err := row.Scan(&eq.ID, &eq.Name, &eq.Quantity, &eq.RentalFee); err != nil {
		return nil, err
	}
	return &eq, nil
}
