package get_available_times

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (time.Time, error) {
	if req.Date == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	if req.DurationHours < 0 || req.DurationHours > domain.MaxDurationHours {
		return time.Time{}, fmt.Errorf("%w: durationHours must be between 0 and %d", ErrInvalidInput, domain.MaxDurationHours)
	}

	return date, nil
}
