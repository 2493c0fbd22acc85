package catalog

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	ruleRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/servicerule"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/catalog/models"
)

var serviceIDPattern = regexp.MustCompile(`^[a-z0-9-]{1,64}$`)

// EngineConfig параметры движка доступности
type EngineConfig struct {
	StrictServices bool
	OperatingHours domain.OperatingHours
}

// Service сервис каталога услуг и их правил блокировки часов
type Service struct {
	ruleRepo  RuleRepository
	cache     RulesCache
	metrics   MetricsCollector
	engineCfg EngineConfig
	logger    Logger
}

// NewService создает новый экземпляр сервиса каталога
// cache может быть nil, nil вместо metrics заменяется на no-op коллектор
func NewService(
	ruleRepo RuleRepository,
	cache RulesCache,
	metrics MetricsCollector,
	engineCfg EngineConfig,
	logger Logger,
) *Service {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Service{
		ruleRepo:  ruleRepo,
		cache:     cache,
		metrics:   metrics,
		engineCfg: engineCfg,
		logger:    logger,
	}
}

// ListRules возвращает эффективную таблицу правил
// Встроенные правила, поверх которых применены сохраненные переопределения
func (s *Service) ListRules(ctx context.Context) (*models.RuleListResponse, error) {
	overrides, err := s.loadOverrides(ctx)
	if err != nil {
		return nil, err
	}

	effective := make(map[string]models.RuleResponse)
	for _, rule := range domain.DefaultServiceRules() {
		effective[rule.ServiceID] = *models.FromDomainRule(&rule, models.SourceDefault)
	}
	for _, rule := range overrides {
		effective[rule.ServiceID] = *models.FromDomainRule(rule, models.SourceOverride)
	}

	rules := make([]models.RuleResponse, 0, len(effective))
	for _, rule := range effective {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ServiceID < rules[j].ServiceID
	})

	return &models.RuleListResponse{Rules: rules}, nil
}

// Engine собирает движок доступности по эффективной таблице правил
func (s *Service) Engine(ctx context.Context) (*availability.Engine, error) {
	overrides, err := s.loadOverrides(ctx)
	if err != nil {
		return nil, err
	}

	rules := domain.DefaultServiceRules()
	for _, rule := range overrides {
		rules = append(rules, *rule)
	}

	return availability.NewEngine(
		availability.NewRuleSet(rules),
		availability.WithOperatingHours(s.engineCfg.OperatingHours),
		availability.WithStrictServices(s.engineCfg.StrictServices),
		availability.WithUnknownServiceHook(s.onUnknownService),
	), nil
}

// UpsertRule создает или заменяет правило услуги
func (s *Service) UpsertRule(ctx context.Context, req *models.UpsertRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("UpsertRule: saving rule for service=%s, kind=%s, blockHours=%d",
		req.ServiceID, req.Kind, req.BlockHours)

	if err := validateRule(req); err != nil {
		s.logger.Warn("UpsertRule: validation failed: %v", err)
		return nil, err
	}

	saved, err := s.ruleRepo.Upsert(ctx, req.ToDomainRule())
	if err != nil {
		s.logger.Error("UpsertRule: repository error for service=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: UpsertRule - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx)

	s.logger.Info("UpsertRule: successfully saved rule for service=%s", saved.ServiceID)
	return models.FromDomainRule(saved, models.SourceOverride), nil
}

// DeleteRule удаляет переопределение, после чего снова действует встроенное правило
func (s *Service) DeleteRule(ctx context.Context, serviceID string) error {
	s.logger.Info("DeleteRule: deleting rule for service=%s", serviceID)

	if err := s.ruleRepo.Delete(ctx, serviceID); err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("DeleteRule: rule for service=%s not found", serviceID)
			return ErrRuleNotFound
		}
		s.logger.Error("DeleteRule: repository error for service=%s: %v", serviceID, err)
		return fmt.Errorf("%w: DeleteRule - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx)

	s.logger.Info("DeleteRule: successfully deleted rule for service=%s", serviceID)
	return nil
}

// Вспомогательные методы

// loadOverrides читает переопределения из кэша, при промахе из БД
// Ошибки кэша не прерывают запрос
func (s *Service) loadOverrides(ctx context.Context) ([]*domain.ServiceRule, error) {
	if s.cache != nil {
		rules, found, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("loadOverrides: cache read failed: %v", err)
		} else if found {
			return rules, nil
		}
	}

	rules, err := s.ruleRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("loadOverrides: repository error: %v", err)
		return nil, fmt.Errorf("%w: loadOverrides - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, rules); err != nil {
			s.logger.Warn("loadOverrides: cache write failed: %v", err)
		}
	}

	return rules, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("invalidate: cache invalidation failed: %v", err)
	}
}

func (s *Service) onUnknownService(serviceID string) {
	s.logger.Warn("unknown service %q ignored", serviceID)
	s.metrics.IncUnknownService(serviceID)
}

// validateRule валидирует параметры правила
func validateRule(req *models.UpsertRuleRequest) error {
	if !serviceIDPattern.MatchString(req.ServiceID) {
		return fmt.Errorf("%w: serviceId must match [a-z0-9-]{1,%d}", ErrInvalidInput, domain.MaxServiceIDLength)
	}

	kind := domain.RuleKind(req.Kind)
	if !kind.IsValid() {
		return fmt.Errorf("%w: kind must be one of whole_day, fixed, variable", ErrInvalidInput)
	}

	if kind == domain.RuleFixed && (req.BlockHours < domain.MinRuleBlockHours || req.BlockHours > domain.MaxRuleBlockHours) {
		return fmt.Errorf("%w: blockHours must be between %d and %d", ErrInvalidInput,
			domain.MinRuleBlockHours, domain.MaxRuleBlockHours)
	}

	return nil
}
