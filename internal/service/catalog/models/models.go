package models

import (
	"encoding/json"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/pkg/ptr"
)

// Request модели. Неизвестные поля JSON, включая id, игнорируются.

// CreateCourtRequest запрос на создание корта
type CreateCourtRequest struct {
	Name     string   `json:"name" validate:"required"`
	Type     string   `json:"type" validate:"required"`
	BaseRate *float64 `json:"baseRate" validate:"required,gte=0"`
	Status   string   `json:"status,omitempty" validate:"omitempty,oneof=active disabled"` // по умолчанию active
}

// UpdateCourtRequest частичное обновление корта
// Все поля опциональны - обновляются только переданные значения
type UpdateCourtRequest struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Type     *string  `json:"type,omitempty" validate:"omitempty,min=1"`
	BaseRate *float64 `json:"baseRate,omitempty" validate:"omitempty,gte=0"`
	Status   *string  `json:"status,omitempty" validate:"omitempty,oneof=active disabled"`
}

// CreateEquipmentRequest запрос на создание инвентаря
type CreateEquipmentRequest struct {
	Name      string   `json:"name" validate:"required"`
	Quantity  *int     `json:"quantity" validate:"required,gte=0"`
	RentalFee *float64 `json:"rentalFee" validate:"required,gte=0"`
}

// UpdateEquipmentRequest частичное обновление инвентаря
type UpdateEquipmentRequest struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Quantity  *int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	RentalFee *float64 `json:"rentalFee,omitempty" validate:"omitempty,gte=0"`
}

// CreateCoachRequest запрос на создание тренера
type CreateCoachRequest struct {
	Name         string                      `json:"name" validate:"required"`
	Bio          string                      `json:"bio"`
	HourlyRate   *float64                    `json:"hourlyRate" validate:"required,gte=0"`
	Active       *bool                       `json:"active,omitempty"` // по умолчанию true
	Availability []domain.WeeklyAvailability `json:"availability"`
}

// UpdateCoachRequest частичное обновление тренера
type UpdateCoachRequest struct {
	Name         *string                      `json:"name,omitempty" validate:"omitempty,min=1"`
	Bio          *string                      `json:"bio,omitempty"`
	HourlyRate   *float64                     `json:"hourlyRate,omitempty" validate:"omitempty,gte=0"`
	Active       *bool                        `json:"active,omitempty"`
	Availability *[]domain.WeeklyAvailability `json:"availability,omitempty"`
}

// CreatePricingRuleRequest запрос на создание правила ценообразования
type CreatePricingRuleRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Type        string          `json:"type" validate:"required"`
	Criteria    json.RawMessage `json:"criteria"`
	Amount      float64         `json:"amount"`
	Mode        string          `json:"mode,omitempty"`    // по умолчанию flat
	Enabled     *bool           `json:"enabled,omitempty"` // по умолчанию true
}

// UpdatePricingRuleRequest частичное обновление правила.
// При смене type без criteria критерии сбрасываются в значения по умолчанию.
type UpdatePricingRuleRequest struct {
	Name        *string         `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string         `json:"description,omitempty"`
	Type        *string         `json:"type,omitempty" validate:"omitempty,min=1"`
	Criteria    json.RawMessage `json:"criteria,omitempty"`
	Amount      *float64        `json:"amount,omitempty"`
	Mode        *string         `json:"mode,omitempty"`
	Enabled     *bool           `json:"enabled,omitempty"`
}

// Методы конвертации

// ToDomain строит корт с новым id
func (r *CreateCourtRequest) ToDomain(id string) *domain.Court {
	status := domain.CourtStatusActive
	if r.Status != "" {
		status = domain.CourtStatus(r.Status)
	}
	return &domain.Court{
		ID:       id,
		Name:     r.Name,
		Type:     r.Type,
		BaseRate: ptr.Value(r.BaseRate),
		Status:   status,
	}
}

// Apply применяет только переданные поля, id не меняется
func (r *UpdateCourtRequest) Apply(c *domain.Court) {
	ptr.Apply(&c.Name, r.Name)
	ptr.Apply(&c.Type, r.Type)
	ptr.Apply(&c.BaseRate, r.BaseRate)
	if r.Status != nil {
		c.Status = domain.CourtStatus(*r.Status)
	}
}

func (r *CreateEquipmentRequest) ToDomain(id string) *domain.Equipment {
	return &domain.Equipment{
		ID:        id,
		Name:      r.Name,
		Quantity:  ptr.Value(r.Quantity),
		RentalFee: ptr.Value(r.RentalFee),
	}
}

func (r *UpdateEquipmentRequest) Apply(e *domain.Equipment) {
	ptr.Apply(&e.Name, r.Name)
	ptr.Apply(&e.Quantity, r.Quantity)
	ptr.Apply(&e.RentalFee, r.RentalFee)
}

func (r *CreateCoachRequest) ToDomain(id string) *domain.Coach {
	availability := r.Availability
	if availability == nil {
		availability = []domain.WeeklyAvailability{}
	}
	active := true
	ptr.Apply(&active, r.Active)
	return &domain.Coach{
		ID:           id,
		Name:         r.Name,
		Bio:          r.Bio,
		HourlyRate:   ptr.Value(r.HourlyRate),
		Active:       active,
		Availability: availability,
	}
}

func (r *UpdateCoachRequest) Apply(c *domain.Coach) {
	ptr.Apply(&c.Name, r.Name)
	ptr.Apply(&c.Bio, r.Bio)
	ptr.Apply(&c.HourlyRate, r.HourlyRate)
	ptr.Apply(&c.Active, r.Active)
	ptr.Apply(&c.Availability, r.Availability)
}
