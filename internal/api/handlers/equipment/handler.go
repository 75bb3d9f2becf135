package equipment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBooking/internal/service/catalog"
	"github.com/m04kA/SMC-CourtBooking/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgRequiredFields     = "name, quantity, rentalFee are required"
	msgInvalidEquipment   = "Invalid equipment data"
	msgNotFound           = "Equipment not found"
)

type Handler struct {
	service EquipmentService
	logger  Logger
}

func NewHandler(service EquipmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/equipment
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListEquipment(r.Context())
	if err != nil {
		h.logger.Error("GET /equipment - Failed to list equipment: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, items)
}

// Create POST /api/equipment
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEquipmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /equipment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.CreateEquipment(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /equipment - Invalid equipment: %v", err)
			handlers.RespondBadRequest(w, handlers.Message(err, catalog.ErrInvalidInput, msgRequiredFields))

		default:
			h.logger.Error("POST /equipment - Failed to create equipment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /equipment - Equipment created: equipment_id=%s", item.ID)
	handlers.RespondJSON(w, http.StatusCreated, item)
}

// Update PUT /api/equipment/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	equipmentID := mux.Vars(r)["id"]

	var req models.UpdateEquipmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("PUT /equipment/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.UpdateEquipment(r.Context(), equipmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrEquipmentNotFound):
			h.logger.Warn("PUT /equipment/{id} - Equipment not found: equipment_id=%s", equipmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /equipment/{id} - Invalid equipment: equipment_id=%s, error=%v", equipmentID, err)
			handlers.RespondBadRequest(w, handlers.Message(err, catalog.ErrInvalidInput, msgInvalidEquipment))

		default:
			h.logger.Error("PUT /equipment/{id} - Failed to update equipment: equipment_id=%s, error=%v", equipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /equipment/{id} - Equipment updated: equipment_id=%s", equipmentID)
	handlers.RespondJSON(w, http.StatusOK, item)
}
