package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByReference получает бронирование по публичному идентификатору
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.BookingResponse, error) {
	s.logger.Info("GetByReference: fetching booking reference=%s", reference)

	ref, err := parseReference(reference)
	if err != nil {
		s.logger.Warn("GetByReference: %v", err)
		return nil, err
	}

	booking, err := s.bookingRepo.GetByReference(ctx, ref)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByReference: booking reference=%s not found", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByReference: repository error for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByReference: successfully fetched booking id=%d", booking.ID)
	return models.FromDomainBooking(booking), nil
}

// ListByDate получает все бронирования на дату
// Порядок: время начала, затем id
func (s *Service) ListByDate(ctx context.Context, date string) (*models.BookingListResponse, error) {
	s.logger.Info("ListByDate: fetching bookings for date=%s", date)

	day, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		s.logger.Warn("ListByDate: invalid date=%q", date)
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByDate(ctx, domain.DateBookingsFilter{Date: day})
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: successfully fetched %d bookings for date=%s", len(bookings), date)
	return models.FromDomainBookingList(date, bookings), nil
}

// Cancel отменяет бронирование
// Запись удаляется целиком и перестает блокировать часы
func (s *Service) Cancel(ctx context.Context, reference string) error {
	s.logger.Info("Cancel: cancelling booking reference=%s", reference)

	ref, err := parseReference(reference)
	if err != nil {
		s.logger.Warn("Cancel: %v", err)
		return err
	}

	if err := s.bookingRepo.DeleteByReference(ctx, ref); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking reference=%s not found", reference)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for reference=%s: %v", reference, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking reference=%s", reference)
	return nil
}

func parseReference(reference string) (uuid.UUID, error) {
	ref, err := uuid.Parse(reference)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid booking reference %q", ErrInvalidInput, reference)
	}
	return ref, nil
}
