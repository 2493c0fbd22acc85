package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date          string  `json:"date"`    // "2025-06-01"
	Time          string  `json:"time"`    // "10:00"
	Service       string  `json:"service"` // "makeup,threading"
	DurationHours int     `json:"durationHours,omitempty"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Reference     string  `json:"reference"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Service       string  `json:"service"`
	DurationHours int     `json:"durationHours"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ConflictResponse ответ 409 с деталями пересечения
type ConflictResponse struct {
	Code               int    `json:"code"`
	Message            string `json:"message"`
	ConflictingHour    *int   `json:"conflictingHour,omitempty"`
	ConflictingService string `json:"conflictingService,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Date:          r.Date,
		Time:          r.Time,
		Service:       r.Service,
		DurationHours: r.DurationHours,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		Reference:     resp.Reference.String(),
		Date:          resp.BookingDate.Format(domain.DateFormat),
		Time:          resp.StartTime.String(),
		Service:       domain.JoinServices(resp.Services),
		DurationHours: resp.DurationHours,
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		CustomerPhone: resp.CustomerPhone,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
