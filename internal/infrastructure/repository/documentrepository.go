package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lexdoc-ai/lexdoc/internal/domain/document"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/document/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/mappers"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/models"
	"github.com/lexdoc-ai/lexdoc/internal/shared/db"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

var documentSortColumns = map[string]bool{
	"created_at":    true,
	"updated_at":    true,
	"file_name":     true,
	"document_type": true,
	"status":        true,
}

type DocumentRepository struct {
	db     *gorm.DB
	mapper mappers.DocumentMapper
	logger logger.Interface
}

func NewDocumentRepository(gdb *gorm.DB, logger logger.Interface) document.Repository {
	return &DocumentRepository{
		db:     gdb,
		mapper: mappers.NewDocumentMapper(),
		logger: logger,
	}
}

func (r *DocumentRepository) Create(ctx context.Context, d *document.Document) error {
	model, err := r.mapper.ToModel(d)
	if err != nil {
		return fmt.Errorf("failed to map document entity: %w", err)
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create document", "tenant", d.TenantCNPJ(), "error", err)
		return fmt.Errorf("failed to create document: %w", err)
	}
	d.SetID(model.ID)
	return nil
}

func (r *DocumentRepository) Update(ctx context.Context, d *document.Document) error {
	model, err := r.mapper.ToModel(d)
	if err != nil {
		return fmt.Errorf("failed to map document entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.DocumentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"case_sid":         model.CaseSID,
			"page_count":       model.PageCount,
			"document_type":    model.DocumentType,
			"extracted_text":   model.ExtractedText,
			"context":          model.Context,
			"analysis_raw":     model.AnalysisRaw,
			"suggested_filing": model.SuggestedFiling,
			"status":           model.Status,
			"filing_sid":       model.FilingSID,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update document", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update document: %w", result.Error)
	}
	return nil
}

func (r *DocumentRepository) Delete(ctx context.Context, tenantCNPJ, sid string) error {
	if err := deleteBySID(db.GetTxFromContext(ctx, r.db), &models.DocumentModel{}, tenantCNPJ, sid, "document"); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) GetBySID(ctx context.Context, tenantCNPJ, sid string) (*document.Document, error) {
	var model models.DocumentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantCNPJ)).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get document", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *DocumentRepository) List(ctx context.Context, filter document.Filter) ([]*document.Document, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.DocumentModel{}).Scopes(db.ForTenant(filter.TenantCNPJ))

	if filter.CaseSID != nil {
		query = query.Where("case_sid = ?", *filter.CaseSID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	var rows []*models.DocumentModel
	if err := query.
		Scopes(db.OrderBy(filter.SortBy, filter.SortOrder, documentSortColumns), db.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list documents: %w", err)
	}

	entities, err := r.mapper.ToEntities(rows)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *DocumentRepository) DetachCase(ctx context.Context, tenantCNPJ, caseSID string) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.DocumentModel{}).
		Scopes(db.ForTenant(tenantCNPJ)).
		Where("case_sid = ?", caseSID).
		Update("case_sid", nil)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to detach documents from case: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *DocumentRepository) DetachFiling(ctx context.Context, tenantCNPJ, filingSID string) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.DocumentModel{}).
		Scopes(db.ForTenant(tenantCNPJ)).
		Where("filing_sid = ?", filingSID).
		Update("filing_sid", nil)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to detach documents from filing: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *DocumentRepository) CountByStatus(ctx context.Context, tenantCNPJ string) (map[vo.ProcessingStatus]int64, error) {
	raw, err := countByStatus(db.GetTxFromContext(ctx, r.db), &models.DocumentModel{}, tenantCNPJ)
	if err != nil {
		return nil, fmt.Errorf("failed to count documents by status: %w", err)
	}
	counts := make(map[vo.ProcessingStatus]int64, len(raw))
	for k, v := range raw {
		counts[vo.ProcessingStatus(k)] = v
	}
	return counts, nil
}
