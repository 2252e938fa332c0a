package list_team

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

// Handle GET /api/v1/team
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListTeam(r.Context())
	if err != nil {
		h.logger.Error("GET /team - Failed to list team: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /team - Retrieved %d team members", len(result.Team))
	handlers.RespondJSON(w, http.StatusOK, result)
}
