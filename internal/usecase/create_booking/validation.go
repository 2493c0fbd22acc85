package create_booking

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

var strictTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (*parsedRequest, error) {
	// Проверяем формат даты
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	// Время принимается только в формате HH:MM
	if !strictTimePattern.MatchString(req.Time) {
		return nil, fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput)
	}
	startTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}

	services := domain.ParseServices(req.Service)
	if len(services) == 0 {
		return nil, fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}
	if len(services) > domain.MaxServicesPerBooking {
		return nil, fmt.Errorf("%w: at most %d services per booking", ErrInvalidInput, domain.MaxServicesPerBooking)
	}

	if req.DurationHours < 0 || req.DurationHours > domain.MaxDurationHours {
		return nil, fmt.Errorf("%w: durationHours must be between 0 and %d", ErrInvalidInput, domain.MaxDurationHours)
	}

	if err := validateCustomer(req); err != nil {
		return nil, err
	}

	return &parsedRequest{
		date:      date,
		startTime: startTime,
		startHour: startTime.Hour(),
		services:  services,
	}, nil
}

// validateCustomer проверяет контактные данные клиента и заметки
func validateCustomer(req *Request) error {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerEmail) == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}
	addr, err := mail.ParseAddress(req.CustomerEmail)
	if err != nil || addr.Address != strings.TrimSpace(req.CustomerEmail) {
		return fmt.Errorf("%w: customerEmail is not a valid email address", ErrInvalidInput)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(bookingDate, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return fmt.Errorf("%w: date %s is in the past", ErrInvalidDate, bookingDate.Format(domain.DateFormat))
	}
	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
// Сравниваются только календарные даты
func isDateInPast(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	dateOnly := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
