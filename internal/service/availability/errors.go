package availability

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных дате или времени запроса
	ErrInvalidInput = errors.New("availability: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)

// Конфликты доступности ресурсов. Проверяются в порядке объявления.
var (
	ErrCourtUnavailable      = errors.New("court not available")
	ErrCourtConflict         = errors.New("court already booked for that slot")
	ErrCoachUnavailable      = errors.New("coach not available")
	ErrCoachConflict         = errors.New("coach already booked for that slot")
	ErrCoachScheduleMismatch = errors.New("coach not available for this time")
	ErrEquipmentNotFound     = errors.New("equipment not found")
	ErrEquipmentInsufficient = errors.New("equipment insufficient for requested quantity")
)

var reasons = map[error]string{
	ErrCourtUnavailable:      "Court not available",
	ErrCourtConflict:         "Court already booked for that slot",
	ErrCoachUnavailable:      "Coach not available",
	ErrCoachConflict:         "Coach already booked for that slot",
	ErrCoachScheduleMismatch: "Coach not available for this time",
	ErrEquipmentNotFound:     "Equipment not found",
}

// ShortageError сообщает о нехватке единиц конкретного инвентаря
type ShortageError struct {
	EquipmentID string
	Name        string
	Requested   int
	Available   int
}

func (e *ShortageError) Error() string {
	return fmt.Sprintf("%s: %s requested=%d available=%d", ErrEquipmentInsufficient, e.Name, e.Requested, e.Available)
}

func (e *ShortageError) Unwrap() error {
	return ErrEquipmentInsufficient
}

// IsConflict возвращает true для ошибок занятости ресурсов
func IsConflict(err error) bool {
	if errors.Is(err, ErrEquipmentInsufficient) {
		return true
	}
	for sentinel := range reasons {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// Reason возвращает сообщение о конфликте для пользователя
func Reason(err error) string {
	var shortage *ShortageError
	if errors.As(err, &shortage) {
		return shortage.Name + " insufficient for requested quantity"
	}
	for sentinel, reason := range reasons {
		if errors.Is(err, sentinel) {
			return reason
		}
	}
	return err.Error()
}
