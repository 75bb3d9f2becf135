package quote_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBooking/internal/service/bookings"
	"github.com/m04kA/SMC-CourtBooking/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidQuote       = "Invalid quote request"
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

// Handle POST /api/bookings/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /bookings/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	breakdown, err := h.service.Quote(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/quote - Invalid quote: court_id=%s, time=%s-%s", req.CourtID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, handlers.Message(err, bookings.ErrInvalidInput, msgInvalidQuote))

		default:
			// Ошибки расчета отдаются клиенту как 400, детали только в логе
			h.logger.Error("POST /bookings/quote - Failed to calculate quote: court_id=%s, error=%v", req.CourtID, err)
			handlers.RespondBadRequest(w, msgInvalidQuote)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, breakdown)
}
