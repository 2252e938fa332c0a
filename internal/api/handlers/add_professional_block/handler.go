package add_professional_block

import (
	"errors"
	"net/http"

	"github.com/larosee/salon-booking-service/internal/api/handlers"
	"github.com/larosee/salon-booking-service/internal/service/catalog"
	"github.com/larosee/salon-booking-service/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные блокировки"
	msgMemberNotFound     = "мастер не найден"
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

// Handle POST /api/v1/team/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.AddBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /team/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddProfessionalBlock(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /team/blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, catalog.ErrMemberNotFound):
			h.logger.Warn("POST /team/blocks - Professional not found: professional_id=%s", req.ProfessionalID)
			handlers.RespondNotFound(w, msgMemberNotFound)

		default:
			h.logger.Error("POST /team/blocks - Failed: professional_id=%s, error=%v", req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /team/blocks - Block created: block_id=%s, professional_id=%s, date=%s",
		result.ID, req.ProfessionalID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
