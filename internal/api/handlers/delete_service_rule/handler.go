package delete_service_rule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/catalog"
)

const msgNotFound = "переопределение правила не найдено"

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

// Handle DELETE /api/v1/admin/services/{serviceId}
// После удаления для услуги снова действует встроенное правило (если оно есть)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	if err := h.service.DeleteRule(r.Context(), serviceID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrRuleNotFound):
			h.logger.Warn("DELETE /admin/services/{id} - Rule not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/services/{id} - Failed to delete rule: service_id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/services/{id} - Rule deleted successfully: service_id=%s", serviceID)
	handlers.RespondNoContent(w)
}
