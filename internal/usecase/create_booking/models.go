package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date          string  // Дата бронирования YYYY-MM-DD
	Time          string  // Время начала HH:MM
	Service       string  // Услуги через запятую
	DurationHours int     // Длительность для услуг переменной длины
	CustomerName  string  // Имя клиента
	CustomerEmail string  // Email клиента
	CustomerPhone *string // Телефон (опционально)
	Notes         *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	Reference     uuid.UUID        // Публичный идентификатор бронирования
	BookingDate   time.Time        // Дата бронирования
	StartTime     types.TimeString // Время начала
	Services      []string         // Услуги
	DurationHours int              // Длительность в часах
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Notes         *string

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

// parsedRequest провалидированный запрос
type parsedRequest struct {
	date      time.Time
	startTime types.TimeString
	startHour int
	services  []string
}
