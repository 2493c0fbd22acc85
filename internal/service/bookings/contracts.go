package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByReference(ctx context.Context, reference uuid.UUID) (*domain.Booking, error)
	GetByDate(ctx context.Context, filter domain.DateBookingsFilter) ([]*domain.Booking, error)
	DeleteByReference(ctx context.Context, reference uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
