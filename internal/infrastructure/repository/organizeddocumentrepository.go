package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lexdoc-ai/lexdoc/internal/domain/organization"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/mappers"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/models"
	"github.com/lexdoc-ai/lexdoc/internal/shared/db"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

var organizedDocumentSortColumns = map[string]bool{
	"created_at":     true,
	"original_name":  true,
	"sector":         true,
	"document_type":  true,
	"suggested_name": true,
}

type OrganizedDocumentRepository struct {
	db     *gorm.DB
	mapper mappers.OrganizedDocumentMapper
	logger logger.Interface
}

func NewOrganizedDocumentRepository(gdb *gorm.DB, logger logger.Interface) organization.Repository {
	return &OrganizedDocumentRepository{
		db:     gdb,
		mapper: mappers.NewOrganizedDocumentMapper(),
		logger: logger,
	}
}

func (r *OrganizedDocumentRepository) Create(ctx context.Context, d *organization.OrganizedDocument) error {
	model, err := r.mapper.ToModel(d)
	if err != nil {
		return fmt.Errorf("failed to map organized document entity: %w", err)
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create organized document", "tenant", d.TenantCNPJ(), "error", err)
		return fmt.Errorf("failed to create organized document: %w", err)
	}
	d.SetID(model.ID)
	return nil
}

func (r *OrganizedDocumentRepository) Update(ctx context.Context, d *organization.OrganizedDocument) error {
	model, err := r.mapper.ToModel(d)
	if err != nil {
		return fmt.Errorf("failed to map organized document entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.OrganizedDocumentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"organized_url":       model.OrganizedURL,
			"document_type":       model.DocumentType,
			"sector":              model.Sector,
			"status":              model.Status,
			"page_count":          model.PageCount,
			"pages_reordered":     model.PagesReordered,
			"separated_documents": model.SeparatedDocuments,
			"parties":             model.Parties,
			"keywords":            model.Keywords,
			"suggested_name":      model.SuggestedName,
			"suggested_folder":    model.SuggestedFolder,
			"observations":        model.Observations,
			"processing_seconds":  model.ProcessingSeconds,
			"ai_metadata":         model.AIMetadata,
			"updated_at":          model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update organized document", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update organized document: %w", result.Error)
	}
	return nil
}

func (r *OrganizedDocumentRepository) GetBySID(ctx context.Context, tenantCNPJ, sid string) (*organization.OrganizedDocument, error) {
	var model models.OrganizedDocumentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantCNPJ)).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get organized document: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *OrganizedDocumentRepository) List(ctx context.Context, filter organization.Filter) ([]*organization.OrganizedDocument, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.OrganizedDocumentModel{}).Scopes(db.ForTenant(filter.TenantCNPJ))

	if filter.BatchID != "" {
		query = query.Where("batch_id = ?", filter.BatchID)
	}
	if filter.Sector != nil {
		query = query.Where("sector = ?", filter.Sector.String())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count organized documents: %w", err)
	}

	var rows []*models.OrganizedDocumentModel
	if err := query.
		Scopes(db.OrderBy(filter.SortBy, filter.SortOrder, organizedDocumentSortColumns), db.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list organized documents: %w", err)
	}

	entities, err := r.mapper.ToEntities(rows)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
