package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lexdoc-ai/lexdoc/internal/domain/accessrequest"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/mappers"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/models"
	"github.com/lexdoc-ai/lexdoc/internal/shared/db"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type AccessRequestRepository struct {
	db     *gorm.DB
	mapper mappers.AccessRequestMapper
	logger logger.Interface
}

func NewAccessRequestRepository(gdb *gorm.DB, logger logger.Interface) accessrequest.Repository {
	return &AccessRequestRepository{
		db:     gdb,
		mapper: mappers.NewAccessRequestMapper(),
		logger: logger,
	}
}

func (r *AccessRequestRepository) Create(ctx context.Context, req *accessrequest.AccessRequest) error {
	model, err := r.mapper.ToModel(req)
	if err != nil {
		return fmt.Errorf("failed to map access request entity: %w", err)
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create access request", "tenant", req.TenantCNPJ(), "error", err)
		return fmt.Errorf("failed to create access request: %w", err)
	}
	req.SetID(model.ID)
	return nil
}

func (r *AccessRequestRepository) Update(ctx context.Context, req *accessrequest.AccessRequest) error {
	model, err := r.mapper.ToModel(req)
	if err != nil {
		return fmt.Errorf("failed to map access request entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.AccessRequestModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"status":           model.Status,
			"responded_at":     model.RespondedAt,
			"responded_by":     model.RespondedBy,
			"rejection_reason": model.RejectionReason,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update access request", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update access request: %w", result.Error)
	}
	return nil
}

func (r *AccessRequestRepository) GetBySID(ctx context.Context, tenantCNPJ, sid string) (*accessrequest.AccessRequest, error) {
	var model models.AccessRequestModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantCNPJ)).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get access request: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *AccessRequestRepository) ListByStatus(ctx context.Context, tenantCNPJ string, status accessrequest.Status) ([]*accessrequest.AccessRequest, error) {
	var rows []*models.AccessRequestModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantCNPJ)).
		Where("status = ?", status.String()).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list access requests: %w", err)
	}
	return r.mapper.ToEntities(rows)
}

func (r *AccessRequestRepository) ExistsPending(ctx context.Context, userEmail, tenantCNPJ string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.AccessRequestModel{}).
		Scopes(db.ForTenant(tenantCNPJ)).
		Where("user_email = ? AND status = ?", userEmail, accessrequest.StatusPending.String()).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check pending access request: %w", err)
	}
	return count > 0, nil
}
