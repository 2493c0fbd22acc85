package servicerule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBookingService/pkg/psqlbuilder"
)

const tableServiceRules = "service_rules"

var ruleColumns = []string{
	"service_id",
	"kind",
	"block_hours",
	"created_at",
	"updated_at",
}

// Repository репозиторий правил блокировки часов для услуг
// Хранит только переопределения - встроенные правила живут в domain.DefaultServiceRules
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll возвращает все сохраненные правила, упорядоченные по идентификатору услуги
func (r *Repository) GetAll(ctx context.Context) ([]*domain.ServiceRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From(tableServiceRules).
		OrderBy("service_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.ServiceRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// GetByServiceID возвращает правило конкретной услуги
func (r *Repository) GetByServiceID(ctx context.Context, serviceID string) (*domain.ServiceRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From(tableServiceRules).
		Where(squirrel.Eq{"service_id": serviceID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByServiceID - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByServiceID - scan rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

// Upsert создает или обновляет правило услуги
func (r *Repository) Upsert(ctx context.Context, rule *domain.ServiceRule) (*domain.ServiceRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableServiceRules).
		Columns("service_id", "kind", "block_hours").
		Values(rule.ServiceID, rule.Kind, rule.BlockHours).
		Suffix("ON CONFLICT (service_id) DO UPDATE SET kind = EXCLUDED.kind, " +
			"block_hours = EXCLUDED.block_hours, updated_at = NOW() " +
			"RETURNING service_id, kind, block_hours, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	saved, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return saved, nil
}

// Delete удаляет правило услуги
func (r *Repository) Delete(ctx context.Context, serviceID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableServiceRules).
		Where(squirrel.Eq{"service_id": serviceID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRule(row rowScanner) (*domain.ServiceRule, error) {
	var (
		rule                 domain.ServiceRule
		createdAt, updatedAt sql.NullTime
	)

	if err := row.Scan(
		&rule.ServiceID,
		&rule.Kind,
		&rule.BlockHours,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}
