package courts

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/service/catalog/models"
)

type CourtService interface {
	ListCourts(ctx context.Context) ([]*domain.Court, error)
	CreateCourt(ctx context.Context, req *models.CreateCourtRequest) (*domain.Court, error)
	UpdateCourt(ctx context.Context, id string, req *models.UpdateCourtRequest) (*domain.Court, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
