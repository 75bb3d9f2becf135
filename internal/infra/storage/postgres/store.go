// Package postgres собирает репозитории PostgreSQL в одно хранилище,
// которое покрывает все интерфейсы сервисов, как memory.Store.
package postgres

import (
	"github.com/m04kA/SMC-CourtBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-CourtBooking/pkg/dbmetrics"
)

type (
	CatalogRepository = catalog.Repository
	BookingRepository = booking.Repository
)

// Store каталог и бронирования поверх одного пула соединений
type Store struct {
	*CatalogRepository
	*BookingRepository
}

// NewStore создает хранилище. Внутри транзакции txmanager.SQLManager
// репозитории берут исполнитель из контекста.
func NewStore(db dbmetrics.DBExecutor) *Store {
	return &Store{
		CatalogRepository: catalog.NewRepository(db),
		BookingRepository: booking.NewRepository(db),
	}
}
