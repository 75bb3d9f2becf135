package postgres_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBooking/internal/infra/storage/postgres"
	"github.com/m04kA/SMC-CourtBooking/internal/service/availability"
	"github.com/m04kA/SMC-CourtBooking/internal/service/bookings"
	"github.com/m04kA/SMC-CourtBooking/internal/service/catalog"
	"github.com/m04kA/SMC-CourtBooking/internal/service/placement"
	"github.com/m04kA/SMC-CourtBooking/internal/service/pricing"
	cancelBooking "github.com/m04kA/SMC-CourtBooking/internal/usecase/cancel_booking"
	createBooking "github.com/m04kA/SMC-CourtBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CourtBooking/pkg/dbmetrics"
)

var (
	_ availability.Repository          = (*postgres.Store)(nil)
	_ bookings.BookingRepository       = (*postgres.Store)(nil)
	_ catalog.Repository               = (*postgres.Store)(nil)
	_ placement.BookingRepository      = (*postgres.Store)(nil)
	_ pricing.CatalogReader            = (*postgres.Store)(nil)
	_ cancelBooking.BookingRepository  = (*postgres.Store)(nil)
	_ createBooking.WaitlistRepository = (*postgres.Store)(nil)
)

func TestStore_SharesExecutor(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := postgres.NewStore(dbmetrics.Wrap(db, nil))

	mock.ExpectQuery(regexp.QuoteMeta("FROM courts")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type", "base_rate", "status"}))
	mock.ExpectQuery(regexp.QuoteMeta("FROM waitlist_entries")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	courts, err := store.ListCourts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, courts)

	entries, err := store.ListWaitlist(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.NoError(t, mock.ExpectationsWereMet())
}
