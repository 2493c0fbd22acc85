package get_available_times

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableTimes "github.com/m04kA/SMC-SalonBookingService/internal/usecase/get_available_times"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
)

type fakeUseCase struct {
	got  *getAvailableTimes.Request
	resp *getAvailableTimes.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getAvailableTimes.Request) (*getAvailableTimes.Response, error) {
	f.got = req
	return f.resp, f.err
}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableTimes.Response{
		Date:             time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		AvailableHours:   []int{9, 13, 15, 16, 17, 18},
		UnavailableHours: []int{10, 11, 12, 14},
	}}
	h := NewHandler(uc, logger.NewNop())

	rec := get(h, "/api/v1/bookings/available-times?date=2025-06-03&service=makeup,threading&durationHours=2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"date":"2025-06-03","availableHours":[9,13,15,16,17,18],"unavailableHours":[10,11,12,14]}`,
		rec.Body.String())

	assert.Equal(t, "2025-06-03", uc.got.Date)
	assert.Equal(t, "makeup,threading", uc.got.Service)
	assert.Equal(t, 2, uc.got.DurationHours)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
	}{
		{"missing date", "/api/v1/bookings/available-times", nil},
		{"non numeric duration", "/api/v1/bookings/available-times?date=2025-06-03&durationHours=two", nil},
		{"invalid input", "/api/v1/bookings/available-times?date=03-06-2025", getAvailableTimes.ErrInvalidInput},
		{"unknown service", "/api/v1/bookings/available-times?date=2025-06-03&service=x", getAvailableTimes.ErrUnknownService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())
			rec := get(h, tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: errors.New("db down")}, logger.NewNop())

	rec := get(h, "/api/v1/bookings/available-times?date=2025-06-03")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
