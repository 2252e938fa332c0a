package remove_blocked_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/larosee/salon-booking-service/internal/api/handlers"
	"github.com/larosee/salon-booking-service/internal/service/catalog"
)

const (
	msgMissingID = "отсутствует ID блокировки даты"
	msgNotFound  = "блокировка даты не найдена"
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

// Handle DELETE /api/v1/blocked-dates/{blockedDateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blockedDateID := vars["blockedDateId"]
	if blockedDateID == "" {
		h.logger.Warn("DELETE /blocked-dates/{id} - Missing ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	if err := h.service.RemoveBlockedDate(r.Context(), blockedDateID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrBlockedDateNotFound):
			h.logger.Warn("DELETE /blocked-dates/{id} - Not found: id=%s", blockedDateID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /blocked-dates/{id} - Failed: id=%s, error=%v", blockedDateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blocked-dates/{id} - Blocked date removed: id=%s", blockedDateID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
