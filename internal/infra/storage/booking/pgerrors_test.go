package booking

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassifyExecError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"serialization failure", &pq.Error{Code: pq.ErrorCode(pgerrcode.SerializationFailure)}, ErrSerialization},
		{"deadlock", &pq.Error{Code: pq.ErrorCode(pgerrcode.DeadlockDetected)}, ErrSerialization},
		{"unique violation", &pq.Error{Code: pq.ErrorCode(pgerrcode.UniqueViolation)}, ErrDuplicate},
		{"other pq error", &pq.Error{Code: pq.ErrorCode(pgerrcode.UndefinedTable)}, ErrExecQuery},
		{"plain error", errors.New("connection reset"), ErrExecQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classifyExecError("op", tt.err), tt.want)
		})
	}
}

func TestIsSerializationFailure(t *testing.T) {
	commitErr := fmt.Errorf("commit: %w", &pq.Error{Code: pq.ErrorCode(pgerrcode.SerializationFailure)})

	assert.True(t, IsSerializationFailure(commitErr))
	assert.True(t, IsSerializationFailure(fmt.Errorf("%w: insert", ErrSerialization)))
	assert.False(t, IsSerializationFailure(errors.New("boom")))
	assert.False(t, IsSerializationFailure(ErrBookingNotFound))
}
