package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lexdoc-ai/lexdoc/internal/domain/agent"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/agent/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/mappers"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/models"
	"github.com/lexdoc-ai/lexdoc/internal/shared/db"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

var agentSortColumns = map[string]bool{
	"created_at":       true,
	"updated_at":       true,
	"name":             true,
	"total_executions": true,
	"last_execution":   true,
}

type AgentRepository struct {
	db     *gorm.DB
	mapper mappers.AgentMapper
	logger logger.Interface
}

func NewAgentRepository(gdb *gorm.DB, logger logger.Interface) agent.Repository {
	return &AgentRepository{
		db:     gdb,
		mapper: mappers.NewAgentMapper(),
		logger: logger,
	}
}

func (r *AgentRepository) Create(ctx context.Context, a *agent.Agent) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return fmt.Errorf("failed to map agent entity: %w", err)
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create agent", "tenant", a.TenantCNPJ(), "error", err)
		return fmt.Errorf("failed to create agent: %w", err)
	}
	a.SetID(model.ID)
	r.logger.Infow("agent created", "sid", model.SID, "name", model.Name)
	return nil
}

// Update writes the configuration columns. Usage counters are only written
// by IncrementUsage and SaveUsage.
func (r *AgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return fmt.Errorf("failed to map agent entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.AgentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":                 model.Name,
			"description":          model.Description,
			"instructions":         model.Instructions,
			"keywords":             model.Keywords,
			"action_triggers":      model.ActionTriggers,
			"personality":          model.Personality,
			"model":                model.Model,
			"temperature":          model.Temperature,
			"max_tokens":           model.MaxTokens,
			"language":             model.Language,
			"post_analysis_action": model.PostAnalysisAction,
			"status":               model.Status,
			"updated_at":           model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update agent", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update agent: %w", result.Error)
	}
	return nil
}

func (r *AgentRepository) Delete(ctx context.Context, tenantCNPJ, sid string) error {
	if err := deleteBySID(db.GetTxFromContext(ctx, r.db), &models.AgentModel{}, tenantCNPJ, sid, "agent"); err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	return nil
}

func (r *AgentRepository) GetBySID(ctx context.Context, tenantCNPJ, sid string) (*agent.Agent, error) {
	var model models.AgentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantCNPJ)).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get agent", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *AgentRepository) List(ctx context.Context, filter agent.Filter) ([]*agent.Agent, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.AgentModel{}).Scopes(db.ForTenant(filter.TenantCNPJ))

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("(name LIKE ? OR description LIKE ?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count agents: %w", err)
	}

	var rows []*models.AgentModel
	if err := query.
		Scopes(db.OrderBy(filter.SortBy, filter.SortOrder, agentSortColumns), db.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list agents: %w", err)
	}

	entities, err := r.mapper.ToEntities(rows)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *AgentRepository) FirstActive(ctx context.Context, tenantCNPJ string) (*agent.Agent, error) {
	var model models.AgentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantCNPJ)).
		Where("status = ?", vo.AgentStatusActive.String()).
		Order("created_at ASC, id ASC").
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get first active agent: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *AgentRepository) CountActive(ctx context.Context, tenantCNPJ string) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.AgentModel{}).
		Scopes(db.ForTenant(tenantCNPJ)).
		Where("status = ?", vo.AgentStatusActive.String()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count active agents: %w", err)
	}
	return count, nil
}

func (r *AgentRepository) IncrementUsage(ctx context.Context, tenantCNPJ, sid string, u vo.Usage, at time.Time) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.AgentModel{}).
		Scopes(db.ForTenant(tenantCNPJ)).
		Where("sid = ?", sid).
		Updates(map[string]any{
			"total_executions":   gorm.Expr("total_executions + ?", u.Executions),
			"documents_analyzed": gorm.Expr("documents_analyzed + ?", u.DocumentsAnalyzed),
			"filings_generated":  gorm.Expr("filings_generated + ?", u.FilingsGenerated),
			"last_execution":     at.UTC(),
			"updated_at":         time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to increment agent usage: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("agent not found", sid)
	}
	return nil
}

func (r *AgentRepository) SaveUsage(ctx context.Context, a *agent.Agent) error {
	metrics := a.Metrics()
	result := db.GetTxFromContext(ctx, r.db).Model(&models.AgentModel{}).
		Scopes(db.ForTenant(a.TenantCNPJ())).
		Where("sid = ?", a.SID()).
		Updates(map[string]any{
			"total_executions":     a.TotalExecutions(),
			"documents_analyzed":   metrics.DocumentsAnalyzed,
			"filings_generated":    metrics.FilingsGenerated,
			"success_rate":         metrics.SuccessRate,
			"average_time_seconds": metrics.AverageTimeSeconds,
			"last_execution":       a.LastExecution(),
			"updated_at":           time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to save agent usage: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("agent not found", a.SID())
	}
	return nil
}
