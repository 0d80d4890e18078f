package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lexdoc-ai/lexdoc/internal/domain/legalcase"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/legalcase/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/mappers"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/models"
	"github.com/lexdoc-ai/lexdoc/internal/shared/db"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

var caseSortColumns = map[string]bool{
	"created_at":    true,
	"updated_at":    true,
	"title":         true,
	"client":        true,
	"next_deadline": true,
	"status":        true,
}

type CaseRepository struct {
	db     *gorm.DB
	mapper mappers.CaseMapper
	logger logger.Interface
}

func NewCaseRepository(gdb *gorm.DB, logger logger.Interface) legalcase.Repository {
	return &CaseRepository{
		db:     gdb,
		mapper: mappers.NewCaseMapper(),
		logger: logger,
	}
}

func (r *CaseRepository) Create(ctx context.Context, c *legalcase.Case) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return fmt.Errorf("failed to map case entity: %w", err)
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create case", "tenant", c.TenantCNPJ(), "error", err)
		return fmt.Errorf("failed to create case: %w", err)
	}
	c.SetID(model.ID)
	r.logger.Infow("case created", "sid", model.SID, "tenant", model.TenantCNPJ)
	return nil
}

func (r *CaseRepository) Update(ctx context.Context, c *legalcase.Case) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return fmt.Errorf("failed to map case entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.CaseModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"title":              model.Title,
			"client":             model.Client,
			"process_number":     model.ProcessNumber,
			"area":               model.Area,
			"status":             model.Status,
			"responsible_lawyer": model.ResponsibleLawyer,
			"opposing_party":     model.OpposingParty,
			"claim_value":        model.ClaimValue,
			"next_deadline":      model.NextDeadline,
			"summary":            model.Summary,
			"updated_at":         model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update case", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update case: %w", result.Error)
	}
	return nil
}

func (r *CaseRepository) Delete(ctx context.Context, tenantCNPJ, sid string) error {
	if err := deleteBySID(db.GetTxFromContext(ctx, r.db), &models.CaseModel{}, tenantCNPJ, sid, "case"); err != nil {
		return fmt.Errorf("failed to delete case: %w", err)
	}
	return nil
}

func (r *CaseRepository) GetBySID(ctx context.Context, tenantCNPJ, sid string) (*legalcase.Case, error) {
	var model models.CaseModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantCNPJ)).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get case", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get case: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *CaseRepository) List(ctx context.Context, filter legalcase.Filter) ([]*legalcase.Case, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.CaseModel{}).Scopes(db.ForTenant(filter.TenantCNPJ))

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Area != nil {
		query = query.Where("area = ?", filter.Area.String())
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("(title LIKE ? OR client LIKE ? OR process_number LIKE ?)", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count cases: %w", err)
	}

	var rows []*models.CaseModel
	if err := query.
		Scopes(db.OrderBy(filter.SortBy, filter.SortOrder, caseSortColumns), db.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list cases: %w", err)
	}

	entities, err := r.mapper.ToEntities(rows)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *CaseRepository) CountByStatus(ctx context.Context, tenantCNPJ string) (map[vo.CaseStatus]int64, error) {
	raw, err := countByStatus(db.GetTxFromContext(ctx, r.db), &models.CaseModel{}, tenantCNPJ)
	if err != nil {
		return nil, fmt.Errorf("failed to count cases by status: %w", err)
	}
	counts := make(map[vo.CaseStatus]int64, len(raw))
	for k, v := range raw {
		counts[vo.CaseStatus(k)] = v
	}
	return counts, nil
}

func (r *CaseRepository) ListUpcomingDeadlines(ctx context.Context, tenantCNPJ string, from, to time.Time, limit int) ([]*legalcase.Case, error) {
	var rows []*models.CaseModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantCNPJ)).
		Where("next_deadline IS NOT NULL AND next_deadline >= ? AND next_deadline <= ?", from, to).
		Order("next_deadline ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list upcoming deadlines: %w", err)
	}
	return r.mapper.ToEntities(rows)
}
