package delete_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/larosee/salon-booking-service/internal/api/handlers"
	"github.com/larosee/salon-booking-service/internal/service/catalog"
)

const (
	msgMissingID = "отсутствует ID услуги"
	msgNotFound  = "услуга не найдена"
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

// Handle DELETE /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID := vars["serviceId"]
	if serviceID == "" {
		h.logger.Warn("DELETE /services/{id} - Missing ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	if err := h.service.DeleteService(r.Context(), serviceID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("DELETE /services/{id} - Not found: id=%s", serviceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /services/{id} - Failed: id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted: id=%s", serviceID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
