package create_booking

import (
	"strings"

	"github.com/m04kA/SMC-CourtBooking/pkg/types"
	"github.com/m04kA/SMC-CourtBooking/pkg/validation"
)

// validateRequest проверяет запрос в порядке: обязательные поля, формат времени,
// диапазон, дата, позиции инвентаря
func validateRequest(v *validation.Validator, req *Request) error {
	if missing := validation.Fields(v.Struct(req), "required"); len(missing) > 0 {
		return reject(ErrMissingFields, "Missing fields: "+strings.Join(missing, ", "))
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return reject(ErrInvalidTime, "startTime must be in HH:MM format")
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return reject(ErrInvalidTime, "endTime must be in HH:MM format")
	}
	if !start.IsBefore(end) {
		return reject(ErrInvalidRange, "startTime must be before endTime")
	}

	if !types.ParseDate(req.Date).IsValid() {
		return reject(ErrInvalidDate, "Invalid date format")
	}

	for _, item := range req.EquipmentItems {
		if item.EquipmentID == "" {
			return reject(ErrInvalidEquipment, "equipmentId is required for every equipment item")
		}
		if item.Quantity < 1 {
			return reject(ErrInvalidEquipment, "Equipment quantity must be at least 1")
		}
	}

	return nil
}
