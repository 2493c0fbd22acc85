package validate_time_slot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
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

type fakeEngines struct {
	engine *availability.Engine
}

func (f *fakeEngines) Engine(ctx context.Context) (*availability.Engine, error) {
	return f.engine, nil
}

type fakeMetrics struct {
	results []string
}

func (m *fakeMetrics) IncAvailabilityCheck(operation, result string) {
	m.results = append(m.results, result)
}

func booking(id int64, date, at string, duration int, services ...string) *domain.Booking {
	day, _ := time.Parse(domain.DateFormat, date)
	return &domain.Booking{
		ID:            id,
		BookingDate:   day,
		StartTime:     types.TimeString(at),
		Services:      services,
		DurationHours: duration,
	}
}

func newUseCase(repo *fakeBookingRepo, metrics MetricsCollector, opts ...availability.Option) *UseCase {
	engine := availability.NewEngine(availability.DefaultRuleSet(), opts...)
	return NewUseCase(repo, &fakeEngines{engine: engine}, metrics, logger.NewNop())
}

func TestExecute(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking(1, "2025-06-01", "09:00", 0, "bridal-makeup"),
		booking(2, "2025-06-03", "10:00", 0, "makeup"),
		booking(3, "2025-06-03", "15:00", 2, "mehendi", "threading"),
	}}

	tests := []struct {
		name        string
		req         Request
		available   bool
		wantHour    int
		wantService string
	}{
		{"whole day blocked", Request{Date: "2025-06-01", Time: "15:00", Service: "lash-lift"}, false, 15, "bridal-makeup"},
		{"other date free", Request{Date: "2025-06-02", Time: "15:00", Service: "lash-lift"}, true, 0, ""},
		{"makeup tail", Request{Date: "2025-06-03", Time: "12:00", Service: "threading"}, false, 12, "makeup"},
		{"after makeup", Request{Date: "2025-06-03", Time: "13:00", Service: "threading"}, true, 0, ""},
		{"first service reported", Request{Date: "2025-06-03", Time: "16:00", Service: "brow-lift"}, false, 16, "mehendi"},
		{"smallest intersecting hour", Request{Date: "2025-06-03", Time: "09:00", Service: "mehendi", DurationHours: 4}, false, 10, "makeup"},
		{"lenient hour parse", Request{Date: "2025-06-03", Time: "abc", Service: "lash-lift"}, true, 0, ""},
		{"unknown service lenient", Request{Date: "2025-06-01", Time: "10:00", Service: "nail-art"}, true, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := &fakeMetrics{}
			uc := newUseCase(repo, metrics)

			resp, err := uc.Execute(context.Background(), &tt.req)
			require.NoError(t, err)
			assert.Len(t, metrics.results, 1)
			assert.Equal(t, tt.available, resp.IsAvailable)
			if tt.available {
				assert.Nil(t, resp.ConflictingHour)
				assert.Nil(t, resp.ConflictingService)
				return
			}
			require.NotNil(t, resp.ConflictingHour)
			assert.Equal(t, tt.wantHour, *resp.ConflictingHour)
			assert.Equal(t, tt.wantService, *resp.ConflictingService)
		})
	}
}

func TestExecute_WithoutMetricsCollector(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{booking(1, "2025-06-01", "09:00", 0, "bridal-makeup")}}
	uc := NewUseCase(repo, &fakeEngines{engine: availability.NewEngine(availability.DefaultRuleSet())}, nil, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-06-01", Time: "15:00", Service: "lash-lift"})

	require.NoError(t, err)
	assert.False(t, resp.IsAvailable)
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, nil)

	tests := []struct {
		name string
		req  Request
	}{
		{"bad date", Request{Date: "2025/06/01", Time: "10:00", Service: "makeup"}},
		{"missing time", Request{Date: "2025-06-01", Time: " ", Service: "makeup"}},
		{"missing service", Request{Date: "2025-06-01", Time: "10:00", Service: ""}},
		{"negative duration", Request{Date: "2025-06-01", Time: "10:00", Service: "mehendi", DurationHours: -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_StrictUnknownService(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, nil, availability.WithStrictServices(true))

	_, err := uc.Execute(context.Background(), &Request{Date: "2025-06-01", Time: "10:00", Service: "makeup,nail-art"})
	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{err: errors.New("timeout")}, nil)

	_, err := uc.Execute(context.Background(), &Request{Date: "2025-06-01", Time: "10:00", Service: "makeup"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Metrics(t *testing.T) {
	metrics := &fakeMetrics{}
	repo := &fakeBookingRepo{bookings: []*domain.Booking{booking(1, "2025-06-01", "10:00", 0, "threading")}}
	uc := newUseCase(repo, metrics)

	_, err := uc.Execute(context.Background(), &Request{Date: "2025-06-01", Time: "10:00", Service: "threading"})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), &Request{Date: "2025-06-01", Time: "11:00", Service: "threading"})
	require.NoError(t, err)

	assert.Equal(t, []string{"conflict", "available"}, metrics.results)
}
