package get_available_times

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

const metricsOperation = "available_times"

// UseCase use case для получения свободных часов на дату
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

// Execute выполняет use case получения свободных часов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimes: date=%s, service=%s, duration=%d", req.Date, req.Service, req.DurationHours)

	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableTimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем движок с актуальной таблицей правил
	engine, err := uc.engines.Engine(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to build availability engine: %v", err)
		return nil, fmt.Errorf("%w: failed to load service rules: %v", ErrInternal, err)
	}

	// 3. Получаем бронирования на дату
	existing, err := uc.bookingRepo.GetByDate(ctx, domain.DateBookingsFilter{Date: date})
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get bookings for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Считаем свободные часы
	candidate := availability.Slot{
		Services:      domain.ParseServices(req.Service),
		DurationHours: req.DurationHours,
	}
	result, err := engine.AvailableHours(candidate, availability.SlotsFromBookings(existing))
	if err != nil {
		if errors.Is(err, availability.ErrUnknownService) {
			uc.logger.Warn("GetAvailableTimes: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnknownService, err)
		}
		return nil, fmt.Errorf("%w: available hours: %v", ErrInternal, err)
	}

	uc.metrics.IncAvailabilityCheck(metricsOperation, "ok")

	uc.logger.Info("GetAvailableTimes: date=%s, %d available, %d unavailable hours",
		req.Date, len(result.AvailableHours), len(result.UnavailableHours))

	return &Response{
		Date:             date,
		AvailableHours:   result.AvailableHours,
		UnavailableHours: result.UnavailableHours,
	}, nil
}
