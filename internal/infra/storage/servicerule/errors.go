package servicerule

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило услуги не найдено
	ErrRuleNotFound = errors.New("servicerule.repository: rule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("servicerule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("servicerule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("servicerule.repository: failed to scan row")
)
