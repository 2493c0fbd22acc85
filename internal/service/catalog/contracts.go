package catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// RuleRepository интерфейс репозитория переопределенных правил услуг
type RuleRepository interface {
	GetAll(ctx context.Context) ([]*domain.ServiceRule, error)
	GetByServiceID(ctx context.Context, serviceID string) (*domain.ServiceRule, error)
	Upsert(ctx context.Context, rule *domain.ServiceRule) (*domain.ServiceRule, error)
	Delete(ctx context.Context, serviceID string) error
}

// RulesCache интерфейс кэша сохраненных правил
type RulesCache interface {
	Get(ctx context.Context) ([]*domain.ServiceRule, bool, error)
	Set(ctx context.Context, rules []*domain.ServiceRule) error
	Invalidate(ctx context.Context) error
}

// MetricsCollector интерфейс для учета неизвестных услуг
type MetricsCollector interface {
	IncUnknownService(serviceID string)
}

// nopMetrics подставляется, когда коллектор не передан
type nopMetrics struct{}

func (nopMetrics) IncUnknownService(serviceID string) {}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
