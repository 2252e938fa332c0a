package get_client_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/larosee/salon-booking-service/internal/api/handlers"
	"github.com/larosee/salon-booking-service/internal/service/bookings"
)

const (
	msgMissingPhone = "отсутствует телефон клиента"
	msgInvalidInput = "некорректный телефон клиента"
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

// Handle GET /api/v1/clients/{phone}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	phone := vars["phone"]
	if phone == "" {
		h.logger.Warn("GET /clients/{phone}/bookings - Missing phone")
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	result, err := h.service.GetClientBookings(r.Context(), phone)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /clients/{phone}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /clients/{phone}/bookings - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{phone}/bookings - Retrieved %d bookings", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
