package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/booking"
)

const metricsOperation = "create_booking"

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	engines      EngineProvider
	txManager    TransactionManager
	metrics      MetricsCollector
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// nil вместо metrics заменяется на no-op коллектор
func NewUseCase(
	bookingRepo BookingRepository,
	engines EngineProvider,
	txManager TransactionManager,
	metrics MetricsCollector,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		engines:      engines,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s, service=%s, duration=%d",
		req.Date, req.Time, req.Service, req.DurationHours)

	// 1. Валидация входных данных
	parsed, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не может быть в прошлом
	if err := validateDate(parsed.date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем движок с актуальной таблицей правил
	engine, err := uc.engines.Engine(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to build availability engine: %v", err)
		return nil, fmt.Errorf("%w: failed to load service rules: %v", ErrInternal, err)
	}

	// 4. Час начала должен попадать в рабочие часы
	if hours := engine.OperatingHours(); !hours.Contains(parsed.startHour) {
		uc.logger.Warn("CreateBooking: start hour %d outside operating hours %d..%d",
			parsed.startHour, hours.Open, hours.Close)
		return nil, fmt.Errorf("%w: start hour must be between %d and %d", ErrInvalidTimeSlot, hours.Open, hours.Close)
	}

	candidate := availability.Slot{
		Services:      parsed.services,
		StartHour:     parsed.startHour,
		DurationHours: req.DurationHours,
	}

	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем бронирования на дату с блокировкой (FOR UPDATE)
		existing, err := uc.bookingRepo.GetByDate(txCtx, domain.DateBookingsFilter{Date: parsed.date})
		if err != nil {
			return uc.wrapRepoError("failed to get bookings", err)
		}

		// 5.2. Проверяем пересечение часов
		conflict, err := engine.CheckConflict(candidate, availability.SlotsFromBookings(existing))
		if err != nil {
			if errors.Is(err, availability.ErrUnknownService) {
				uc.logger.Warn("CreateBooking: %v", err)
				return fmt.Errorf("%w: %v", ErrUnknownService, err)
			}
			return fmt.Errorf("%w: conflict check: %v", ErrInternal, err)
		}
		if !conflict.Available {
			uc.logger.Warn("CreateBooking: slot not available, hour %d taken by %s (booking id=%d)",
				conflict.ConflictingHour, conflict.ConflictingService, conflict.ConflictingBookingID)
			return &ConflictError{Hour: conflict.ConflictingHour, Service: conflict.ConflictingService}
		}

		// 5.3. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			BookingDate:   parsed.date,
			StartTime:     parsed.startTime,
			Services:      parsed.services,
			DurationHours: req.DurationHours,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Notes:         req.Notes,
		})
		if err != nil {
			return uc.wrapRepoError("failed to create booking", err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotAvailable), errors.Is(err, ErrUnknownService),
			errors.Is(err, ErrConcurrentBooking), errors.Is(err, ErrInternal):
		case bookingRepo.IsSerializationFailure(err):
			uc.logger.Warn("CreateBooking: serialization failure on commit: %v", err)
			err = fmt.Errorf("%w: %v", ErrConcurrentBooking, err)
		default:
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			err = fmt.Errorf("%w: transaction: %v", ErrInternal, err)
		}
		uc.observe(err)
		return nil, err
	}

	uc.observe(nil)
	uc.logger.Info("CreateBooking: successfully created booking id=%d, reference=%s", result.ID, result.Reference)

	return &Response{
		ID:            result.ID,
		Reference:     result.Reference,
		BookingDate:   result.BookingDate,
		StartTime:     result.StartTime,
		Services:      result.Services,
		DurationHours: result.DurationHours,
		CustomerName:  result.CustomerName,
		CustomerEmail: result.CustomerEmail,
		CustomerPhone: result.CustomerPhone,
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// wrapRepoError отделяет конфликт сериализации от прочих ошибок хранилища
func (uc *UseCase) wrapRepoError(msg string, err error) error {
	if bookingRepo.IsSerializationFailure(err) {
		uc.logger.Warn("CreateBooking: %s: serialization failure: %v", msg, err)
		return fmt.Errorf("%w: %v", ErrConcurrentBooking, err)
	}
	uc.logger.Error("CreateBooking: %s: %v", msg, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, msg, err)
}

func (uc *UseCase) observe(err error) {
	switch {
	case err == nil:
		uc.metrics.IncAvailabilityCheck(metricsOperation, "booked")
	case errors.Is(err, ErrSlotNotAvailable):
		uc.metrics.IncAvailabilityCheck(metricsOperation, "conflict")
	case errors.Is(err, ErrConcurrentBooking):
		uc.metrics.IncAvailabilityCheck(metricsOperation, "concurrent")
	default:
		uc.metrics.IncAvailabilityCheck(metricsOperation, "error")
	}
}
