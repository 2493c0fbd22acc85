package delete_service_rule

import "context"

type CatalogService interface {
	DeleteRule(ctx context.Context, serviceID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
