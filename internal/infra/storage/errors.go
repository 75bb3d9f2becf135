package storage

import "errors"

var (
	// ErrNotFound возвращается репозиториями, когда запись с указанным id отсутствует
	ErrNotFound = errors.New("storage: record not found")

	// ErrBuildQuery возвращается при ошибке построения SQL-запроса
	ErrBuildQuery = errors.New("storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса
	ErrExecQuery = errors.New("storage: failed to execute query")

	// ErrScanRow возвращается при ошибке чтения строки результата
	ErrScanRow = errors.New("storage: failed to scan row")

	// ErrEncode возвращается при ошибке (де)сериализации JSONB-колонки
	ErrEncode = errors.New("storage: failed to encode column")
)
