package validate_time_slot

import "time"

// Request модель запроса на проверку времени
type Request struct {
	Date          string // Дата YYYY-MM-DD
	Time          string // Время начала, из строки берется только час
	Service       string // Услуги через запятую
	DurationHours int    // Длительность для услуг переменной длины
}

// Response результат проверки
// ConflictingHour и ConflictingService заполнены только при IsAvailable=false
type Response struct {
	Date               time.Time
	IsAvailable        bool
	ConflictingHour    *int
	ConflictingService *string
}
