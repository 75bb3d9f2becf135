package coaches

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
	msgRequiredFields     = "name and hourlyRate are required"
	msgInvalidCoach       = "Invalid coach data"
	msgNotFound           = "Coach not found"
)

type Handler struct {
	service CoachService
	logger  Logger
}

func NewHandler(service CoachService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/coaches
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	coaches, err := h.service.ListCoaches(r.Context())
	if err != nil {
		h.logger.Error("GET /coaches - Failed to list coaches: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, coaches)
}

// Create POST /api/coaches
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCoachRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /coaches - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	coach, err := h.service.CreateCoach(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /coaches - Invalid coach: %v", err)
			handlers.RespondBadRequest(w, handlers.Message(err, catalog.ErrInvalidInput, msgRequiredFields))

		default:
			h.logger.Error("POST /coaches - Failed to create coach: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coaches - Coach created: coach_id=%s", coach.ID)
	handlers.RespondJSON(w, http.StatusCreated, coach)
}

// Update PUT /api/coaches/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	coachID := mux.Vars(r)["id"]

	var req models.UpdateCoachRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("PUT /coaches/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	coach, err := h.service.UpdateCoach(r.Context(), coachID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrCoachNotFound):
			h.logger.Warn("PUT /coaches/{id} - Coach not found: coach_id=%s", coachID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /coaches/{id} - Invalid coach: coach_id=%s, error=%v", coachID, err)
			handlers.RespondBadRequest(w, handlers.Message(err, catalog.ErrInvalidInput, msgInvalidCoach))

		default:
			h.logger.Error("PUT /coaches/{id} - Failed to update coach: coach_id=%s, error=%v", coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /coaches/{id} - Coach updated: coach_id=%s", coachID)
	handlers.RespondJSON(w, http.StatusOK, coach)
}
