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

var courtColumns = []string{"id", "name", "type", "base_rate", "status"}

// Repository репозиторий каталога ресурсов в PostgreSQL.
// Порядок выдачи списков совпадает с порядком создания (колонка seq).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListCourts возвращает все корты
func (r *Repository) ListCourts(ctx context.Context) ([]*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courtColumns...).
		From("courts").
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCourts - build select query: %w", storage.ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCourts - execute query: %w", storage.ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]*domain.Court, 0)
	for rows.Next() {
		court, err := scanCourt(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListCourts - scan court: %w", storage.ErrScanRow, err)
		}
		courts = append(courts, court)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCourts - rows error: %w", storage.ErrScanRow, err)
	}
	return courts, nil
}

// GetCourt получает корт по ID
func (r *Repository) GetCourt(ctx context.Context, id string) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courtColumns...).
		From("courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCourt - build select query: %w", storage.ErrBuildQuery, err)
	}

	court, err := scanCourt(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: court %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCourt - scan court: %w", storage.ErrScanRow, err)
	}
	return court, nil
}

// CreateCourt сохраняет новый корт
func (r *Repository) CreateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("courts").
		Columns(courtColumns...).
		Values(court.ID, court.Name, court.Type, court.BaseRate, court.Status).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateCourt - build insert query: %w", storage.ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: CreateCourt - execute insert: %w", storage.ErrExecQuery, err)
	}

	created := *court
	return &created, nil
}

// UpdateCourt перезаписывает все поля корта, кроме ID
func (r *Repository) UpdateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	query, args, err := psqlbuilder.Update("courts").
		Set("name", court.Name).
		Set("type", court.Type).
		Set("base_rate", court.BaseRate).
		Set("status", court.Status).
		Where(squirrel.Eq{"id": court.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateCourt - build update query: %w", storage.ErrBuildQuery, err)
	}

	if err := r.execAffectingOne(ctx, "UpdateCourt", "court "+court.ID, query, args); err != nil {
		return nil, err
	}

	updated := *court
	return &updated, nil
}

// execAffectingOne выполняет запрос и возвращает storage.ErrNotFound, если строка не затронута
func (r *Repository) execAffectingOne(ctx context.Context, op, what, query string, args []interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %w", storage.ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", storage.ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, what)
	}
	return nil
}

func scanCourt(row scanner) (*domain.Court, error) {
	var court domain.Court
	if err := row.Scan(&court.ID, &court.Name, &court.Type, &court.BaseRate, &court.Status); err != nil {
		return nil, err
	}
	return &court, nil
}
