package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/storage"
	"github.com/m04kA/SMC-CourtBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

var waitlistColumns = []string{
	"id",
	"user_name",
	"user_contact",
	"court_id",
	"coach_id",
	"equipment_items",
	"booking_date",
	"start_time",
	"end_time",
	"status",
	"reason",
	"created_at",
}

// CreateWaitlistEntry ставит запрос в конец листа ожидания
func (r *Repository) CreateWaitlistEntry(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	items, err := json.Marshal(nonNilItems(entry.EquipmentItems))
	if err != nil {
		return nil, fmt.Errorf("%w: CreateWaitlistEntry - equipment items: %w", storage.ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("waitlist_entries").
		Columns(waitlistColumns...).
		Values(
			entry.ID,
			entry.UserName,
			entry.UserContact,
			entry.CourtID,
			entry.CoachID,
			string(items),
			entry.Date,
			entry.StartTime,
			entry.EndTime,
			entry.Status,
			entry.Reason,
			entry.CreatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateWaitlistEntry - build insert query: %w", storage.ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: CreateWaitlistEntry - execute insert: %w", storage.ErrExecQuery, err)
	}
	return entry, nil
}

// ListWaitlist возвращает лист ожидания в порядке постановки
func (r *Repository) ListWaitlist(ctx context.Context) ([]*domain.WaitlistEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(waitlistColumns...).
		From("waitlist_entries").
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWaitlist - build select query: %w", storage.ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWaitlist - execute query: %w", storage.ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.WaitlistEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("ListWaitlist: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWaitlist - rows error: %w", storage.ErrScanRow, err)
	}
	return entries, nil
}

// FirstWaitlistMatch возвращает самую старую запись с точным совпадением корта, даты и времени
func (r *Repository) FirstWaitlistMatch(ctx context.Context, courtID, date string, start, end types.TimeString) (*domain.WaitlistEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(waitlistColumns...).
		From("waitlist_entries").
		Where(squirrel.Eq{
			"court_id":     courtID,
			"booking_date": date,
			"start_time":   start,
			"end_time":     end,
		}).
		OrderBy("seq ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FirstWaitlistMatch - build select query: %w", storage.ErrBuildQuery, err)
	}

	entry, err := scanEntry(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: waitlist entry for %s %s %s-%s", storage.ErrNotFound, courtID, date, start, end)
	}
	if err != nil {
		return nil, fmt.Errorf("FirstWaitlistMatch: %w", err)
	}
	return entry, nil
}

// DeleteWaitlistEntry удаляет запись после продвижения
func (r *Repository) DeleteWaitlistEntry(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("waitlist_entries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteWaitlistEntry - build delete query: %w", storage.ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteWaitlistEntry - execute delete: %w", storage.ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteWaitlistEntry - get rows affected: %w", storage.ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: waitlist entry %s", storage.ErrNotFound, id)
	}
	return nil
}

func scanEntry(row scanner) (*domain.WaitlistEntry, error) {
	var (
		entry domain.WaitlistEntry
		items []byte
		date  time.Time
	)

	err := row.Scan(
		&entry.ID,
		&entry.UserName,
		&entry.UserContact,
		&entry.CourtID,
		&entry.CoachID,
		&items,
		&date,
		&entry.StartTime,
		&entry.EndTime,
		&entry.Status,
		&entry.Reason,
		&entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: scan waitlist entry: %w", storage.ErrScanRow, err)
	}

	entry.Date = date.Format(domain.DateFormat)
	if err := json.Unmarshal(items, &entry.EquipmentItems); err != nil {
		return nil, fmt.Errorf("%w: waitlist entry %s equipment items: %w", storage.ErrEncode, entry.ID, err)
	}
	entry.EquipmentItems = nonNilItems(entry.EquipmentItems)
	return &entry, nil
}
