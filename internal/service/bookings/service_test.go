package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (r *fakeBookingRepo) GetByReference(ctx context.Context, reference uuid.UUID) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, b := range r.bookings {
		if b.Reference == reference {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *fakeBookingRepo) GetByDate(ctx context.Context, filter domain.DateBookingsFilter) ([]*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.BookingDate.Equal(filter.Date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) DeleteByReference(ctx context.Context, reference uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	for i, b := range r.bookings {
		if b.Reference == reference {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return bookingRepo.ErrBookingNotFound
}

func sampleBooking(date string, at string, services ...string) *domain.Booking {
	day, _ := time.Parse(domain.DateFormat, date)
	return &domain.Booking{
		ID:            1,
		Reference:     uuid.New(),
		BookingDate:   day,
		StartTime:     types.TimeString(at),
		Services:      services,
		CustomerName:  "Asha",
		CustomerEmail: "asha@example.com",
	}
}

func TestGetByReference(t *testing.T) {
	b := sampleBooking("2025-06-01", "09:00", domain.ServiceBridalMakeup)
	svc := NewService(&fakeBookingRepo{bookings: []*domain.Booking{b}}, logger.NewNop())

	resp, err := svc.GetByReference(context.Background(), b.Reference.String())
	require.NoError(t, err)
	assert.Equal(t, b.Reference.String(), resp.Reference)
	assert.Equal(t, "2025-06-01", resp.Date)
	assert.Equal(t, "09:00", resp.Time)
	assert.Equal(t, "bridal-makeup", resp.Service)

	_, err = svc.GetByReference(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.GetByReference(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByReference_RepositoryError(t *testing.T) {
	svc := NewService(&fakeBookingRepo{err: errors.New("boom")}, logger.NewNop())

	_, err := svc.GetByReference(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestListByDate(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		sampleBooking("2025-06-01", "09:00", domain.ServiceMakeup),
		sampleBooking("2025-06-01", "14:00", domain.ServiceLashLift, domain.ServiceThreading),
		sampleBooking("2025-06-02", "10:00", domain.ServiceMehendi),
	}}
	svc := NewService(repo, logger.NewNop())

	resp, err := svc.ListByDate(context.Background(), "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "lash-lift,threading", resp.Bookings[1].Service)

	empty, err := svc.ListByDate(context.Background(), "2025-07-01")
	require.NoError(t, err)
	assert.Zero(t, empty.Total)
	assert.NotNil(t, empty.Bookings)

	_, err = svc.ListByDate(context.Background(), "01.06.2025")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	b := sampleBooking("2025-06-01", "09:00", domain.ServiceMakeup)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{b}}
	svc := NewService(repo, logger.NewNop())

	require.NoError(t, svc.Cancel(context.Background(), b.Reference.String()))
	assert.Empty(t, repo.bookings)

	err := svc.Cancel(context.Background(), b.Reference.String())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
