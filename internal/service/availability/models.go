package availability

import "github.com/m04kA/SMC-CourtBooking/internal/domain"

// Availability доступность ресурсов на запрошенное окно
type Availability struct {
	Courts    []domain.CourtAvailability     `json:"courts"`
	Coaches   []domain.CoachAvailability     `json:"coaches"`
	Equipment []domain.EquipmentAvailability `json:"equipment"`
}

// Window запрошенное окно времени
type Window struct {
	Date      string
	StartTime string
	EndTime   string
}
