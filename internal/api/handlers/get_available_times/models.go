package get_available_times

import (
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	getAvailableTimes "github.com/m04kA/SMC-SalonBookingService/internal/usecase/get_available_times"
)

// AvailableTimesResponse HTTP response model
type AvailableTimesResponse struct {
	Date             string `json:"date"`
	AvailableHours   []int  `json:"availableHours"`
	UnavailableHours []int  `json:"unavailableHours"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTimes.Response) *AvailableTimesResponse {
	return &AvailableTimesResponse{
		Date:             resp.Date.Format(domain.DateFormat),
		AvailableHours:   resp.AvailableHours,
		UnavailableHours: resp.UnavailableHours,
	}
}
