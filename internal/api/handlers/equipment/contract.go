package equipment

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/service/catalog/models"
)

type EquipmentService interface {
	ListEquipment(ctx context.Context) ([]*domain.Equipment, error)
	CreateEquipment(ctx context.Context, req *models.CreateEquipmentRequest) (*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, id string, req *models.UpdateEquipmentRequest) (*domain.Equipment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
