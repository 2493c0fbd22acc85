package booking

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
)

// classifyExecError превращает ошибку драйвера в ошибку репозитория
// SQLSTATE 40001/40P01 -> ErrSerialization, 23505 -> ErrDuplicate, остальное -> ErrExecQuery
func classifyExecError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return fmt.Errorf("%w: %s: %v", ErrSerialization, op, err)
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w: %s: %v", ErrDuplicate, op, err)
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}

// IsSerializationFailure проверяет, что ошибка (в т.ч. при COMMIT) - конфликт сериализации
func IsSerializationFailure(err error) bool {
	if errors.Is(err, ErrSerialization) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		return code == pgerrcode.SerializationFailure || code == pgerrcode.DeadlockDetected
	}
	return false
}
