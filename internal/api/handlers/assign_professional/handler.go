package assign_professional

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/larosee/salon-booking-service/internal/api/handlers"
	"github.com/larosee/salon-booking-service/internal/service/bookings"
	"github.com/larosee/salon-booking-service/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingBookingID     = "отсутствует ID бронирования"
	msgBookingNotFound      = "бронирование не найдено"
	msgProfessionalNotFound = "мастер не найден"
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

// Handle PATCH /api/v1/bookings/{bookingId}/professional
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]
	if bookingID == "" {
		h.logger.Warn("PATCH /bookings/{id}/professional - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	var req AssignProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/professional - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AssignProfessional(r.Context(), &models.AssignProfessionalRequest{
		BookingID:      bookingID,
		ProfessionalID: req.ProfessionalID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/professional - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrProfessionalNotFound):
			h.logger.Warn("PATCH /bookings/{id}/professional - Professional not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		default:
			h.logger.Error("PATCH /bookings/{id}/professional - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/professional - Professional assigned: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
