package dbmetrics

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBooking/pkg/metrics"
)

func TestGetExecutor_FallsBackToDB(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := Wrap(db, nil)
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, wrapped, GetExecutor(ctx, wrapped))
}

func TestDB_RecordsQueries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())
	wrapped := Wrap(db, m)

	mock.ExpectExec("DELETE FROM pricing_rules").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(1))
	mock.ExpectCommit()

	_, err = wrapped.ExecContext(context.Background(), "DELETE FROM pricing_rules WHERE id = $1", "pr1")
	require.NoError(t, err)

	tx, err := wrapped.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	ctx := WithTx(context.Background(), tx)
	assert.True(t, IsInTransaction(ctx))

	var one int
	require.NoError(t, GetExecutor(ctx, wrapped).QueryRowContext(ctx, "SELECT 1").Scan(&one))
	require.NoError(t, tx.Commit())

	assert.Equal(t, 1, one)
	assert.Equal(t, 2, testutil.CollectAndCount(m.DBQueryDuration))
	assert.NoError(t, mock.ExpectationsWereMet())
}
