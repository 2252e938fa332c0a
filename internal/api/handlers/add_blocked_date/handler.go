package add_blocked_date

import (
	"errors"
	"net/http"

	"github.com/larosee/salon-booking-service/internal/api/handlers"
	"github.com/larosee/salon-booking-service/internal/service/catalog"
	"github.com/larosee/salon-booking-service/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.AddBlockedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddBlockedDate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /blocked-dates - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("POST /blocked-dates - Failed: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-dates - Blocked date created: id=%s, date=%s", result.ID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
