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
)

var bookingColumns = []string{
	"id",
	"user_name",
	"user_contact",
	"court_id",
	"court_type",
	"coach_id",
	"equipment_items",
	"booking_date",
	"start_time",
	"end_time",
	"price",
	"status",
	"promoted_from_waitlist",
	"created_at",
}

// Repository репозиторий бронирований и листа ожидания в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBooking сохраняет бронирование.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	items, err := json.Marshal(nonNilItems(booking.EquipmentItems))
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBooking - equipment items: %w", storage.ErrEncode, err)
	}
	price, err := json.Marshal(booking.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBooking - price: %w", storage.ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(bookingColumns...).
		Values(
			booking.ID,
			booking.UserName,
			booking.UserContact,
			booking.CourtID,
			booking.CourtType,
			booking.CoachID,
			string(items),
			booking.Date,
			booking.StartTime,
			booking.EndTime,
			string(price),
			booking.Status,
			booking.PromotedFromWaitlist,
			booking.CreatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBooking - build insert query: %w", storage.ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: CreateBooking - execute insert: %w", storage.ErrExecQuery, err)
	}
	return booking, nil
}

// GetBooking получает бронирование по ID
func (r *Repository) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBooking - build select query: %w", storage.ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: booking %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("GetBooking: %w", err)
	}
	return booking, nil
}

// ListBookings возвращает все бронирования, включая отмененные, от старых к новым
func (r *Repository) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookings - build select query: %w", storage.ErrBuildQuery, err)
	}
	return r.queryBookings(ctx, "ListBookings", query, args)
}

// ListActiveBookingsByDate возвращает неотмененные бронирования на дату.
// Внутри транзакции строки блокируются (FOR UPDATE) до ее завершения.
func (r *Repository) ListActiveBookingsByDate(ctx context.Context, date string) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.NotEq{"status": domain.BookingStatusCancelled}).
		OrderBy("seq ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBookingsByDate - build select query: %w", storage.ErrBuildQuery, err)
	}
	return r.queryBookings(ctx, "ListActiveBookingsByDate", query, args)
}

// UpdateBookingStatus обновляет статус бронирования
func (r *Repository) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateBookingStatus - build update query: %w", storage.ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateBookingStatus - execute update: %w", storage.ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateBookingStatus - get rows affected: %w", storage.ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: booking %s", storage.ErrNotFound, id)
	}
	return nil
}

func (r *Repository) queryBookings(ctx context.Context, op, query string, args []interface{}) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", storage.ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", storage.ErrScanRow, op, err)
	}
	return bookings, nil
}

func scanBooking(row scanner) (*domain.Booking, error) {
	var (
		booking domain.Booking
		items   []byte
		price   []byte
		date    time.Time
	)

	err := row.Scan(
		&booking.ID,
		&booking.UserName,
		&booking.UserContact,
		&booking.CourtID,
		&booking.CourtType,
		&booking.CoachID,
		&items,
		&date,
		&booking.StartTime,
		&booking.EndTime,
		&price,
		&booking.Status,
		&booking.PromotedFromWaitlist,
		&booking.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: scan booking: %w", storage.ErrScanRow, err)
	}

	booking.Date = date.Format(domain.DateFormat)
	if err := json.Unmarshal(items, &booking.EquipmentItems); err != nil {
		return nil, fmt.Errorf("%w: booking %s equipment items: %w", storage.ErrEncode, booking.ID, err)
	}
	if err := json.Unmarshal(price, &booking.Price); err != nil {
		return nil, fmt.Errorf("%w: booking %s price: %w", storage.ErrEncode, booking.ID, err)
	}
	booking.EquipmentItems = nonNilItems(booking.EquipmentItems)
	return &booking, nil
}

func nonNilItems(items []domain.EquipmentItem) []domain.EquipmentItem {
	if items == nil {
		return []domain.EquipmentItem{}
	}
	return items
}
