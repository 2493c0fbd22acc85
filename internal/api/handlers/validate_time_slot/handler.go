package validate_time_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	validateTimeSlot "github.com/m04kA/SMC-SalonBookingService/internal/usecase/validate_time_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры проверки"
	msgUnknownService     = "неизвестная услуга"
)

type Handler struct {
	useCase ValidateTimeSlotUseCase
	logger  Logger
}

func NewHandler(useCase ValidateTimeSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, validateTimeSlot.ErrInvalidInput):
			h.logger.Warn("POST /bookings/validate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput+": "+err.Error())

		case errors.Is(err, validateTimeSlot.ErrUnknownService):
			h.logger.Warn("POST /bookings/validate - Unknown service: service=%s", req.Service)
			handlers.RespondBadRequest(w, msgUnknownService)

		default:
			h.logger.Error("POST /bookings/validate - Failed to validate: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/validate - Checked: date=%s, time=%s, available=%t",
		req.Date, req.Time, result.IsAvailable)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
