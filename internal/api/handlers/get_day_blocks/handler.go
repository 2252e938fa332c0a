package get_day_blocks

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/larosee/salon-booking-service/internal/api/handlers"
	"github.com/larosee/salon-booking-service/internal/service/catalog"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

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

// Handle GET /api/v1/schedule/{date}/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateKey := vars["date"]

	result, err := h.service.GetDayBlocks(r.Context(), dateKey)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /schedule/{date}/blocks - Invalid date: date=%s", dateKey)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /schedule/{date}/blocks - Failed: date=%s, error=%v", dateKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/{date}/blocks - Retrieved %d blocks for date=%s", len(result.Blocks), dateKey)
	handlers.RespondJSON(w, http.StatusOK, result)
}
