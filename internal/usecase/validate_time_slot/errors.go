package validate_time_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("validate_time_slot: invalid input data")

	// ErrUnknownService возвращается в строгом режиме для услуг без правила
	ErrUnknownService = errors.New("validate_time_slot: unknown service")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("validate_time_slot: internal error")
)
