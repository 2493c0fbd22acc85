package validate_time_slot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	validateTimeSlot "github.com/m04kA/SMC-SalonBookingService/internal/usecase/validate_time_slot"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) GetByDate(ctx context.Context, filter domain.DateBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.BookingDate.Equal(filter.Date) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeEngines struct{}

func (fakeEngines) Engine(ctx context.Context) (*availability.Engine, error) {
	return availability.NewEngine(availability.DefaultRuleSet()), nil
}

func newHandler() *Handler {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{{
		ID:          1,
		BookingDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("09:00"),
		Services:    []string{"bridal-makeup"},
	}}}
	uc := validateTimeSlot.NewUseCase(repo, fakeEngines{}, nil, logger.NewNop())
	return NewHandler(uc, logger.NewNop())
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/validate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	h := newHandler()

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantBody string
	}{
		{
			name:     "conflict on bridal day",
			body:     `{"date":"2025-06-01","time":"15:00","service":"lash-lift"}`,
			wantCode: http.StatusOK,
			wantBody: `{"isAvailable":false,"conflictingHour":15,"conflictingService":"bridal-makeup"}`,
		},
		{
			name:     "free on next day",
			body:     `{"date":"2025-06-02","time":"15:00","service":"lash-lift"}`,
			wantCode: http.StatusOK,
			wantBody: `{"isAvailable":true}`,
		},
		{
			name:     "invalid date",
			body:     `{"date":"June 1","time":"15:00","service":"lash-lift"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed body",
			body:     `not json`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(h, tt.body)
			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
