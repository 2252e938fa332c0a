package get_day_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/larosee/salon-booking-service/internal/api/handlers"
	"github.com/larosee/salon-booking-service/internal/domain"
	"github.com/larosee/salon-booking-service/internal/service/bookings"
	"github.com/larosee/salon-booking-service/internal/service/bookings/models"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus = "некорректный статус бронирования"
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

// Handle GET /api/v1/schedule/{date}/bookings?status=...&professionalId=...&includeAbsent=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateKey := vars["date"]

	if _, err := time.Parse(domain.DateFormat, dateKey); err != nil {
		h.logger.Warn("GET /schedule/{date}/bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &models.GetDayBookingsRequest{
		DateKey:       dateKey,
		IncludeAbsent: r.URL.Query().Get("includeAbsent") == "true",
	}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}
	if professionalID := r.URL.Query().Get("professionalId"); professionalID != "" {
		req.ProfessionalID = &professionalID
	}

	result, err := h.service.GetDayBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /schedule/{date}/bookings - Invalid filter: date=%s, error=%v", dateKey, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /schedule/{date}/bookings - Failed: date=%s, error=%v", dateKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/{date}/bookings - Retrieved %d bookings for date=%s", result.Total, dateKey)
	handlers.RespondJSON(w, http.StatusOK, result)
}
