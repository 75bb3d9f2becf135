package catalog

import (
	"github.com/m04kA/SMC-CourtBooking/pkg/dbmetrics"
)

// DBExecutor переиспользуем интерфейс из dbmetrics.
// Поддерживает *sql.DB, *dbmetrics.DB и транзакцию из контекста.
type DBExecutor = dbmetrics.DBExecutor

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}
