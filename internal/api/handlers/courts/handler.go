package courts

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
	msgRequiredFields     = "name, type, baseRate are required"
	msgInvalidCourt       = "Invalid court data"
	msgNotFound           = "Court not found"
)

// Handler обработчики каталога кортов
type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/courts
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	courts, err := h.service.ListCourts(r.Context())
	if err != nil {
		h.logger.Error("GET /courts - Failed to list courts: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, courts)
}

// Create POST /api/courts
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /courts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	court, err := h.service.CreateCourt(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /courts - Invalid court: %v", err)
			handlers.RespondBadRequest(w, handlers.Message(err, catalog.ErrInvalidInput, msgRequiredFields))

		default:
			h.logger.Error("POST /courts - Failed to create court: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /courts - Court created: court_id=%s", court.ID)
	handlers.RespondJSON(w, http.StatusCreated, court)
}

// Update PUT /api/courts/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	courtID := mux.Vars(r)["id"]

	var req models.UpdateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("PUT /courts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	court, err := h.service.UpdateCourt(r.Context(), courtID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrCourtNotFound):
			h.logger.Warn("PUT /courts/{id} - Court not found: court_id=%s", courtID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /courts/{id} - Invalid court: court_id=%s, error=%v", courtID, err)
			handlers.RespondBadRequest(w, handlers.Message(err, catalog.ErrInvalidInput, msgInvalidCourt))

		default:
			h.logger.Error("PUT /courts/{id} - Failed to update court: court_id=%s, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /courts/{id} - Court updated: court_id=%s", courtID)
	handlers.RespondJSON(w, http.StatusOK, court)
}
