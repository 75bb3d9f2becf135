package list_waitlist

import (
	"net/http"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/waitlist
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListWaitlist(r.Context())
	if err != nil {
		h.logger.Error("GET /waitlist - Failed to list waitlist: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, entries)
}
