package remove_professional_block

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/larosee/salon-booking-service/internal/api/handlers"
	"github.com/larosee/salon-booking-service/internal/service/catalog"
)

const (
	msgMissingBlockID = "отсутствует ID блокировки"
	msgNotFound       = "блокировка не найдена"
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

// Handle DELETE /api/v1/team/blocks/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blockID := vars["blockId"]
	if blockID == "" {
		h.logger.Warn("DELETE /team/blocks/{id} - Missing block ID")
		handlers.RespondBadRequest(w, msgMissingBlockID)
		return
	}

	if err := h.service.RemoveProfessionalBlock(r.Context(), blockID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrBlockNotFound):
			h.logger.Warn("DELETE /team/blocks/{id} - Block not found: block_id=%s", blockID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /team/blocks/{id} - Failed: block_id=%s, error=%v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /team/blocks/{id} - Block removed: block_id=%s", blockID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
