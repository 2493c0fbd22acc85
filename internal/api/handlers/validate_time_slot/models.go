package validate_time_slot

import (
	validateTimeSlot "github.com/m04kA/SMC-SalonBookingService/internal/usecase/validate_time_slot"
)

// ValidateRequest HTTP request model
type ValidateRequest struct {
	Date          string `json:"date"`
	Time          string `json:"time"`
	Service       string `json:"service"`
	DurationHours int    `json:"durationHours,omitempty"`
}

// ValidateResponse HTTP response model
type ValidateResponse struct {
	IsAvailable        bool    `json:"isAvailable"`
	ConflictingHour    *int    `json:"conflictingHour,omitempty"`
	ConflictingService *string `json:"conflictingService,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateRequest) ToUseCaseRequest() *validateTimeSlot.Request {
	return &validateTimeSlot.Request{
		Date:          r.Date,
		Time:          r.Time,
		Service:       r.Service,
		DurationHours: r.DurationHours,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validateTimeSlot.Response) *ValidateResponse {
	return &ValidateResponse{
		IsAvailable:        resp.IsAvailable,
		ConflictingHour:    resp.ConflictingHour,
		ConflictingService: resp.ConflictingService,
	}
}
