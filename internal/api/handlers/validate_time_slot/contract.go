package validate_time_slot

import (
	"context"

	validateTimeSlot "github.com/m04kA/SMC-SalonBookingService/internal/usecase/validate_time_slot"
)

type ValidateTimeSlotUseCase interface {
	Execute(ctx context.Context, req *validateTimeSlot.Request) (*validateTimeSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
