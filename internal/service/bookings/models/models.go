package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	Reference     string    `json:"reference"`
	Date          string    `json:"date"`          // YYYY-MM-DD
	Time          string    `json:"time"`          // HH:MM
	Service       string    `json:"service"`       // Список услуг через запятую
	DurationHours int       `json:"durationHours"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone *string   `json:"customerPhone,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		Reference:     b.Reference.String(),
		Date:          b.BookingDate.Format(domain.DateFormat),
		Time:          b.StartTime.String(),
		Service:       b.ServiceList(),
		DurationHours: b.DurationHours,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(date string, bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		if resp := FromDomainBooking(b); resp != nil {
			result = append(result, *resp)
		}
	}

	return &BookingListResponse{
		Date:     date,
		Bookings: result,
		Total:    len(result),
	}
}
