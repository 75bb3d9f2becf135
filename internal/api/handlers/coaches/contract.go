package coaches

import (
	"context"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/internal/service/catalog/models"
)

type CoachService interface {
	ListCoaches(ctx context.Context) ([]*domain.Coach, error)
	CreateCoach(ctx context.Context, req *models.CreateCoachRequest) (*domain.Coach, error)
	UpdateCoach(ctx context.Context, id string, req *models.UpdateCoachRequest) (*domain.Coach, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
