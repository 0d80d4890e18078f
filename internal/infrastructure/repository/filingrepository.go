package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lexdoc-ai/lexdoc/internal/domain/filing"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/filing/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/mappers"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/models"
	"github.com/lexdoc-ai/lexdoc/internal/shared/db"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

var filingSortColumns = map[string]bool{
	"created_at":     true,
	"updated_at":     true,
	"title":          true,
	"legal_deadline": true,
	"status":         true,
}

type FilingRepository struct {
	db     *gorm.DB
	mapper mappers.FilingMapper
	logger logger.Interface
}

func NewFilingRepository(gdb *gorm.DB, logger logger.Interface) filing.Repository {
	return &FilingRepository{
		db:     gdb,
		mapper: mappers.NewFilingMapper(),
		logger: logger,
	}
}

func (r *FilingRepository) Create(ctx context.Context, f *filing.Filing) error {
	model, err := r.mapper.ToModel(f)
	if err != nil {
		return fmt.Errorf("failed to map filing entity: %w", err)
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create filing", "tenant", f.TenantCNPJ(), "error", err)
		return fmt.Errorf("failed to create filing: %w", err)
	}
	f.SetID(model.ID)
	return nil
}

func (r *FilingRepository) Update(ctx context.Context, f *filing.Filing) error {
	model, err := r.mapper.ToModel(f)
	if err != nil {
		return fmt.Errorf("failed to map filing entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.FilingModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"case_sid":     model.CaseSID,
			"title":        model.Title,
			"content_text": model.ContentText,
			"content_html": model.ContentHTML,
			"status":       model.Status,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update filing", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update filing: %w", result.Error)
	}
	return nil
}

func (r *FilingRepository) Delete(ctx context.Context, tenantCNPJ, sid string) error {
	if err := deleteBySID(db.GetTxFromContext(ctx, r.db), &models.FilingModel{}, tenantCNPJ, sid, "filing"); err != nil {
		return fmt.Errorf("failed to delete filing: %w", err)
	}
	return nil
}

func (r *FilingRepository) GetBySID(ctx context.Context, tenantCNPJ, sid string) (*filing.Filing, error) {
	var model models.FilingModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantCNPJ)).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get filing", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get filing: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *FilingRepository) List(ctx context.Context, filter filing.Filter) ([]*filing.Filing, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.FilingModel{}).Scopes(db.ForTenant(filter.TenantCNPJ))

	if filter.CaseSID != nil {
		query = query.Where("case_sid = ?", *filter.CaseSID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Type != nil {
		query = query.Where("filing_type = ?", filter.Type.String())
	}
	if filter.Search != "" {
		query = query.Where("title LIKE ?", likePattern(filter.Search))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filings: %w", err)
	}

	var rows []*models.FilingModel
	if err := query.
		Scopes(db.OrderBy(filter.SortBy, filter.SortOrder, filingSortColumns), db.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list filings: %w", err)
	}

	entities, err := r.mapper.ToEntities(rows)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *FilingRepository) DetachCase(ctx context.Context, tenantCNPJ, caseSID string) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.FilingModel{}).
		Scopes(db.ForTenant(tenantCNPJ)).
		Where("case_sid = ?", caseSID).
		Update("case_sid", nil)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to detach filings from case: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *FilingRepository) CountByStatus(ctx context.Context, tenantCNPJ string) (map[vo.FilingStatus]int64, error) {
	raw, err := countByStatus(db.GetTxFromContext(ctx, r.db), &models.FilingModel{}, tenantCNPJ)
	if err != nil {
		return nil, fmt.Errorf("failed to count filings by status: %w", err)
	}
	counts := make(map[vo.FilingStatus]int64, len(raw))
	for k, v := range raw {
		counts[vo.FilingStatus(k)] = v
	}
	return counts, nil
}
