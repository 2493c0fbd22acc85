package validate_time_slot

import (
	"context"

	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByDate(ctx context.Context, filter domain.DateBookingsFilter) ([]*domain.Booking, error)
}

// EngineProvider интерфейс источника движка доступности
type EngineProvider interface {
	Engine(ctx context.Context) (*availability.Engine, error)
}

// MetricsCollector интерфейс для учета проверок доступности
type MetricsCollector interface {
	IncAvailabilityCheck(operation, result string)
}

// nopMetrics подставляется, когда коллектор не передан
type nopMetrics struct{}

func (nopMetrics) IncAvailabilityCheck(operation, result string) {}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
