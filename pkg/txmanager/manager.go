package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-CourtBooking/pkg/dbmetrics"
)

// serializationAttempts число попыток транзакции при конфликте сериализации (SQLSTATE 40001)
const serializationAttempts = 3

var (
	// ErrBeginTx ошибка открытия транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx ошибка фиксации транзакции
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")
)

// LockManager сериализует операции внутри процесса: DoSerializable берет
// эксклюзивную блокировку, DoReadOnly - разделяемую.
// Вложенные вызовы не поддерживаются.
type LockManager struct {
	mu sync.RWMutex
}

// NewLockManager создает менеджер для in-memory хранилища
func NewLockManager() *LockManager {
	return &LockManager{}
}

// DoSerializable выполняет fn под эксклюзивной блокировкой
func (m *LockManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// DoReadOnly выполняет fn под разделяемой блокировкой
func (m *LockManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fn(ctx)
}

// TxBeginner источник транзакций (*dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// SQLManager дополняет блокировку процесса транзакцией БД, которая передается
// репозиториям через контекст (dbmetrics.GetExecutor).
type SQLManager struct {
	lock LockManager
	db   TxBeginner
}

// NewSQLManager создает менеджер транзакций PostgreSQL
func NewSQLManager(db TxBeginner) *SQLManager {
	return &SQLManager{db: db}
}

// DoSerializable выполняет fn в транзакции с уровнем изоляции SERIALIZABLE.
// Транзакция, отклоненная при фиксации из-за конфликта сериализации с другим
// экземпляром сервиса, повторяется целиком.
func (m *SQLManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.lock.DoSerializable(ctx, func(ctx context.Context) error {
		var err error
		for attempt := 0; attempt < serializationAttempts; attempt++ {
			err = m.inTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
			if !isSerializationFailure(err) {
				return err
			}
		}
		return err
	})
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *SQLManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.lock.DoReadOnly(ctx, func(ctx context.Context) error {
		return m.inTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, fn)
	})
}

func (m *SQLManager) inTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitTx, err)
	}
	return nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "40001"
}
