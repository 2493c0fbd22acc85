package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается, когда дата бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда час начала вне рабочих часов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrUnknownService возвращается в строгом режиме для услуг без правила
	ErrUnknownService = errors.New("create_booking: unknown service")

	// ErrSlotNotAvailable возвращается, когда часы пересекаются с существующим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrConcurrentBooking возвращается при конфликте сериализации с параллельной записью
	ErrConcurrentBooking = errors.New("create_booking: concurrent booking, retry later")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError детали пересечения с существующим бронированием
type ConflictError struct {
	Hour    int
	Service string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: hour %d is taken by %s", ErrSlotNotAvailable, e.Hour, e.Service)
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotNotAvailable
}
