package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-CourtBooking/internal/usecase/create_booking"
)

const msgInvalidRequestBody = "Invalid request body"

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Пустое тело разбирается как пустой запрос, use case перечислит недостающие поля
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var rejection *createBooking.RejectionError
		switch {
		case errors.As(err, &rejection):
			h.logger.Warn("POST /bookings - Booking rejected: court_id=%s, date=%s, reason=%s",
				req.CourtID, req.Date, rejection.Message)
			handlers.RespondBadRequest(w, rejection.Message)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: court_id=%s, date=%s, error=%v",
				req.CourtID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Лист ожидания - успешный, но отложенный исход
	if result.Waitlisted {
		h.logger.Info("POST /bookings - Added to waitlist: entry_id=%s, court_id=%s, date=%s",
			result.Entry.ID, req.CourtID, req.Date)
		handlers.RespondJSON(w, http.StatusAccepted, FromUseCaseResponse(result))
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, court_id=%s, date=%s",
		result.Booking.ID, req.CourtID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, result.Booking)
}
