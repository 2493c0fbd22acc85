package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// Booking represents a salon appointment for one calendar day
type Booking struct {
	ID        int64
	Reference uuid.UUID // Public identifier handed to the customer

	BookingDate   time.Time        // Calendar day, time component is ignored
	StartTime     types.TimeString // Nominal start, only the hour matters for blocking
	Services      []string         // Service identifiers, stored as a comma-separated list
	DurationHours int              // Meaningful only for variable-length services (mehendi)

	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartHour returns the hour component of StartTime (0 for malformed values)
func (b *Booking) StartHour() int {
	return b.StartTime.Hour()
}

// ServiceList returns the stored representation of Services
func (b *Booking) ServiceList() string {
	return JoinServices(b.Services)
}

// FirstService returns the first service identifier or an empty string
func (b *Booking) FirstService() string {
	if len(b.Services) == 0 {
		return ""
	}
	return b.Services[0]
}

// ParseServices splits a comma-separated list of service identifiers.
// Whitespace around identifiers is trimmed and empty items are dropped.
func ParseServices(raw string) []string {
	parts := strings.Split(raw, ServiceDelimiter)
	services := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		services = append(services, p)
	}
	return services
}

// JoinServices is the inverse of ParseServices
func JoinServices(services []string) string {
	return strings.Join(services, ServiceDelimiter)
}

// DateBookingsFilter selects bookings of a single day
type DateBookingsFilter struct {
	Date time.Time
}
