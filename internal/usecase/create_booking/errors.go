package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFields возвращается, когда не заполнены обязательные поля
	ErrMissingFields = errors.New("create_booking: missing required fields")

	// ErrInvalidTime возвращается, когда время не в формате HH:MM
	ErrInvalidTime = errors.New("create_booking: invalid time format")

	// ErrInvalidRange возвращается, когда startTime не раньше endTime
	ErrInvalidRange = errors.New("create_booking: invalid time range")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidEquipment возвращается при некорректной позиции инвентаря
	ErrInvalidEquipment = errors.New("create_booking: invalid equipment item")

	// ErrSlotNotAvailable возвращается, когда ресурсы заняты, а лист ожидания не запрошен
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// RejectionError отказ в бронировании с сообщением для пользователя
type RejectionError struct {
	Err     error // sentinel этого пакета
	Cause   error // исходная ошибка проверки доступности, может быть nil
	Message string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Message)
}

func (e *RejectionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func reject(err error, message string) *RejectionError {
	return &RejectionError{Err: err, Message: message}
}
