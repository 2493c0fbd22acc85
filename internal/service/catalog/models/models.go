package models

import (
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// Источник правила в эффективной таблице
const (
	SourceDefault  = "default"
	SourceOverride = "override"
)

// Request модели

// UpsertRuleRequest запрос на создание или замену правила услуги
type UpsertRuleRequest struct {
	ServiceID  string `json:"serviceId"`
	Kind       string `json:"kind"`
	BlockHours int    `json:"blockHours"` // Только для kind=fixed
}

// ToDomainRule конвертирует запрос в domain модель
// Для kind отличного от fixed количество часов обнуляется
func (r *UpsertRuleRequest) ToDomainRule() *domain.ServiceRule {
	rule := &domain.ServiceRule{
		ServiceID: r.ServiceID,
		Kind:      domain.RuleKind(r.Kind),
	}
	if rule.Kind == domain.RuleFixed {
		rule.BlockHours = r.BlockHours
	}
	return rule
}

// Response модели

// RuleResponse правило услуги в эффективной таблице
type RuleResponse struct {
	ServiceID  string `json:"serviceId"`
	Kind       string `json:"kind"`
	BlockHours int    `json:"blockHours,omitempty"`
	Source     string `json:"source"`
}

// RuleListResponse эффективная таблица правил
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(r *domain.ServiceRule, source string) *RuleResponse {
	if r == nil {
		return nil
	}

	return &RuleResponse{
		ServiceID:  r.ServiceID,
		Kind:       string(r.Kind),
		BlockHours: r.BlockHours,
		Source:     source,
	}
}
