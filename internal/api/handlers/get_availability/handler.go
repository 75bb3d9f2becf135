package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBooking/internal/service/availability"
)

const (
	msgMissingParams = "date, startTime, endTime are required"
	msgInvalidWindow = "invalid date or time window"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/availability?date=YYYY-MM-DD&startTime=HH:MM&endTime=HH:MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	window := availability.Window{
		Date:      query.Get("date"),
		StartTime: query.Get("startTime"),
		EndTime:   query.Get("endTime"),
	}

	if window.Date == "" || window.StartTime == "" || window.EndTime == "" {
		h.logger.Warn("GET /availability - Missing query params: %s", r.URL.RawQuery)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	result, err := h.service.GetAvailability(r.Context(), window)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid window: date=%s, time=%s-%s", window.Date, window.StartTime, window.EndTime)
			handlers.RespondBadRequest(w, handlers.Message(err, availability.ErrInvalidInput, msgInvalidWindow))

		default:
			h.logger.Error("GET /availability - Failed to get availability: date=%s, error=%v", window.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
