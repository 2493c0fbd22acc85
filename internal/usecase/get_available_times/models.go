package get_available_times

import "time"

// Request модель запроса на получение свободных часов
// Service и DurationHours принимаются, но не сужают результат
type Request struct {
	Date          string // Дата YYYY-MM-DD
	Service       string // Услуги через запятую (опционально)
	DurationHours int    // Длительность (опционально)
}

// Response модель ответа со свободными и занятыми часами
type Response struct {
	Date             time.Time // Дата, на которую запрашивались часы
	AvailableHours   []int     // Рабочие часы, не занятые бронированиями, по возрастанию
	UnavailableHours []int     // Часы, занятые бронированиями, по возрастанию
}
