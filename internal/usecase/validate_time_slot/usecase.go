package validate_time_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

const metricsOperation = "validate"

// UseCase use case для проверки, свободно ли время для набора услуг
type UseCase struct {
	bookingRepo BookingRepository
	engines     EngineProvider
	metrics     MetricsCollector
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// nil вместо metrics заменяется на no-op коллектор
func NewUseCase(
	bookingRepo BookingRepository,
	engines EngineProvider,
	metrics MetricsCollector,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		bookingRepo: bookingRepo,
		engines:     engines,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет проверку пересечения с бронированиями на ту же дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateTimeSlot: date=%s, time=%s, service=%s, duration=%d",
		req.Date, req.Time, req.Service, req.DurationHours)

	// 1. Валидация входных данных
	date, services, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ValidateTimeSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем движок с актуальной таблицей правил
	engine, err := uc.engines.Engine(ctx)
	if err != nil {
		uc.logger.Error("ValidateTimeSlot: failed to build availability engine: %v", err)
		return nil, fmt.Errorf("%w: failed to load service rules: %v", ErrInternal, err)
	}

	// 3. Получаем бронирования на дату
	existing, err := uc.bookingRepo.GetByDate(ctx, domain.DateBookingsFilter{Date: date})
	if err != nil {
		uc.logger.Error("ValidateTimeSlot: failed to get bookings for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Проверяем пересечение
	candidate := availability.Slot{
		Services:      services,
		StartHour:     types.ParseHour(req.Time),
		DurationHours: req.DurationHours,
	}
	result, err := engine.CheckConflict(candidate, availability.SlotsFromBookings(existing))
	if err != nil {
		if errors.Is(err, availability.ErrUnknownService) {
			uc.logger.Warn("ValidateTimeSlot: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnknownService, err)
		}
		return nil, fmt.Errorf("%w: conflict check: %v", ErrInternal, err)
	}

	resp := &Response{Date: date, IsAvailable: result.Available}
	if !result.Available {
		resp.ConflictingHour = &result.ConflictingHour
		resp.ConflictingService = &result.ConflictingService
		uc.logger.Info("ValidateTimeSlot: hour %d on %s taken by %s",
			result.ConflictingHour, req.Date, result.ConflictingService)
		uc.observe("conflict")
	} else {
		uc.observe("available")
	}

	return resp, nil
}

func (uc *UseCase) observe(result string) {
	uc.metrics.IncAvailabilityCheck(metricsOperation, result)
}
