package catalog

import "errors"

var (
	// ErrRuleNotFound возвращается, когда для услуги нет сохраненного правила
	ErrRuleNotFound = errors.New("rule not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
