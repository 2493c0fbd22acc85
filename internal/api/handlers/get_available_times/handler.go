package get_available_times

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	getAvailableTimes "github.com/m04kA/SMC-SalonBookingService/internal/usecase/get_available_times"
)

const (
	msgMissingDate     = "дата обязательна"
	msgInvalidDuration = "некорректная длительность"
	msgUnknownService  = "неизвестная услуга"
	msgInvalidParams   = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/available-times
// Query params: date (required, YYYY-MM-DD), service, durationHours (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /bookings/available-times - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	duration := 0
	if raw := query.Get("durationHours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /bookings/available-times - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		duration = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableTimes.Request{
		Date:          dateStr,
		Service:       query.Get("service"),
		DurationHours: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTimes.ErrInvalidInput):
			h.logger.Warn("GET /bookings/available-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams+": "+err.Error())

		case errors.Is(err, getAvailableTimes.ErrUnknownService):
			h.logger.Warn("GET /bookings/available-times - Unknown service: service=%s", query.Get("service"))
			handlers.RespondBadRequest(w, msgUnknownService)

		default:
			h.logger.Error("GET /bookings/available-times - Failed to get hours: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/available-times - Hours retrieved successfully: date=%s, available_count=%d",
		dateStr, len(result.AvailableHours))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
