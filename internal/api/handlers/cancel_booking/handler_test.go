package cancel_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
)

type fakeService struct {
	got string
	err error
}

func (f *fakeService) Cancel(ctx context.Context, reference string) error {
	f.got = reference
	return f.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"cancelled", nil, http.StatusNoContent},
		{"invalid reference", bookings.ErrInvalidInput, http.StatusBadRequest},
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"internal", errors.New("db"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			router := mux.NewRouter()
			router.HandleFunc("/api/v1/bookings/{reference}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/ref-1", nil))

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, "ref-1", svc.got)
		})
	}
}
