package update_service_rule

import (
	"github.com/m04kA/SMC-SalonBookingService/internal/service/catalog/models"
)

// UpdateRuleRequest HTTP request model
type UpdateRuleRequest struct {
	Kind       string `json:"kind"`                 // whole_day | fixed | variable
	BlockHours int    `json:"blockHours,omitempty"` // Только для fixed
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateRuleRequest) ToServiceRequest(serviceID string) *models.UpsertRuleRequest {
	return &models.UpsertRuleRequest{
		ServiceID:  serviceID,
		Kind:       r.Kind,
		BlockHours: r.BlockHours,
	}
}
