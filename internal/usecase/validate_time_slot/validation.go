package validate_time_slot

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Час начала разбирается нестрого: нечисловое значение дает 0
func validateRequest(req *Request) (time.Time, []string, error) {
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Time) == "" {
		return time.Time{}, nil, fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	services := domain.ParseServices(req.Service)
	if len(services) == 0 {
		return time.Time{}, nil, fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	if req.DurationHours < 0 || req.DurationHours > domain.MaxDurationHours {
		return time.Time{}, nil, fmt.Errorf("%w: durationHours must be between 0 and %d", ErrInvalidInput, domain.MaxDurationHours)
	}

	return date, services, nil
}
