package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBooking/internal/infra/storage"
	"github.com/m04kA/SMC-CourtBooking/pkg/validation"
)

// Service сервис каталога: корты, инвентарь, тренеры и правила ценообразования.
// Каскадных удалений нет. Удалить можно только правило ценообразования.
type Service struct {
	repo      Repository
	txManager TransactionManager
	validator *validation.Validator
	logger    Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo Repository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		validator: validation.New(),
		logger:    logger,
	}
}

// validate проверяет теги структуры запроса
func (s *Service) validate(op string, req interface{}) error {
	if errs := s.validator.Struct(req); len(errs) > 0 {
		s.logger.Warn("%s: validation failed: %s", op, validation.Join(errs))
		return fmt.Errorf("%w: %s", ErrInvalidInput, validation.Join(errs))
	}
	return nil
}

// update выполняет чтение-изменение-запись одной сущности в одной транзакции
func update[T any](
	ctx context.Context,
	s *Service,
	op, id string,
	notFound error,
	get func(context.Context, string) (*T, error),
	apply func(*T) error,
	save func(context.Context, *T) (*T, error),
) (*T, error) {
	var result *T
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		current, err := get(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(current); err != nil {
			return err
		}
		result, err = save(ctx, current)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			s.logger.Warn("%s: id=%s not found", op, id)
			return nil, notFound
		case errors.Is(err, ErrInvalidInput):
			s.logger.Warn("%s: id=%s rejected: %v", op, id, err)
			return nil, err
		default:
			s.logger.Error("%s: repository error for id=%s: %v", op, id, err)
			return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
		}
	}

	s.logger.Info("%s: successfully updated id=%s", op, id)
	return result, nil
}
