package list_blocked_dates

import (
	"net/http"

	"github.com/larosee/salon-booking-service/internal/api/handlers"
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

// Handle GET /api/v1/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBlockedDates(r.Context())
	if err != nil {
		h.logger.Error("GET /blocked-dates - Failed to list blocked dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /blocked-dates - Retrieved %d blocked dates", len(result.BlockedDates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
