package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/storage"
	"github.com/m04kA/SMC-CourtBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBooking/pkg/psqlbuilder"
)

var coachColumns = []string{"id", "name", "bio", "hourly_rate", "active", "availability"}

// ListCoaches возвращает всех тренеров
func (r *Repository) ListCoaches(ctx context.Context) ([]*domain.Coach, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(coachColumns...).
		From("coaches").
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCoaches - build select query: %w", storage.ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCoaches - execute query: %w", storage.ErrExecQuery, err)
	}
	defer rows.Close()

	coaches := make([]*domain.Coach, 0)
	for rows.Next() {
		coach, err := scanCoach(rows)
		if err != nil {
			return nil, fmt.Errorf("ListCoaches: %w", err)
		}
		coaches = append(coaches, coach)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCoaches - rows error: %w", storage.ErrScanRow, err)
	}
	return coaches, nil
}

// GetCoach получает тренера по ID
func (r *Repository) GetCoach(ctx context.Context, id string) (*domain.Coach, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(coachColumns...).
		From("coaches").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCoach - build select query: %w", storage.ErrBuildQuery, err)
	}

	coach, err := scanCoach(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: coach %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("GetCoach: %w", err)
	}
	return coach, nil
}

// CreateCoach сохраняет нового тренера, расписание хранится в JSONB
func (r *Repository) CreateCoach(ctx context.Context, coach *domain.Coach) (*domain.Coach, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	availability, err := encodeAvailability(coach.Availability)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateCoach - availability: %w", storage.ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("coaches").
		Columns(coachColumns...).
		Values(coach.ID, coach.Name, coach.Bio, coach.HourlyRate, coach.Active, availability).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateCoach - build insert query: %w", storage.ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: CreateCoach - execute insert: %w", storage.ErrExecQuery, err)
	}
	return coach, nil
}

// UpdateCoach перезаписывает все поля тренера, кроме ID
func (r *Repository) UpdateCoach(ctx context.Context, coach *domain.Coach) (*domain.Coach, error) {
	availability, err := encodeAvailability(coach.Availability)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateCoach - availability: %w", storage.ErrEncode, err)
	}

	query, args, err := psqlbuilder.Update("coaches").
		Set("name", coach.Name).
		Set("bio", coach.Bio).
		Set("hourly_rate", coach.HourlyRate).
		Set("active", coach.Active).
		Set("availability", availability).
		Where(squirrel.Eq{"id": coach.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateCoach - build update query: %w", storage.ErrBuildQuery, err)
	}

	if err := r.execAffectingOne(ctx, "UpdateCoach", "coach "+coach.ID, query, args); err != nil {
		return nil, err
	}
	return coach, nil
}

func encodeAvailability(availability []domain.WeeklyAvailability) (string, error) {
	if availability == nil {
		availability = []domain.WeeklyAvailability{}
	}
	raw, err := json.Marshal(availability)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func scanCoach(row scanner) (*domain.Coach, error) {
	var (
		coach        domain.Coach
		availability []byte
	)
	if err := row.Scan(&coach.ID, &coach.Name, &coach.Bio, &coach.HourlyRate, &coach.Active, &availability); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: scan coach: %w", storage.ErrScanRow, err)
	}
	if err := json.Unmarshal(availability, &coach.Availability); err != nil {
		return nil, fmt.Errorf("%w: coach %s availability: %w", storage.ErrEncode, coach.ID, err)
	}
	return &coach, nil
}
