package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/mappers"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/models"
	"github.com/lexdoc-ai/lexdoc/internal/shared/db"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

const maxAuditPage = 200

type AuditLogRepository struct {
	db     *gorm.DB
	mapper mappers.AuditLogMapper
	logger logger.Interface
}

func NewAuditLogRepository(gdb *gorm.DB, logger logger.Interface) audit.Repository {
	return &AuditLogRepository{
		db:     gdb,
		mapper: mappers.NewAuditLogMapper(),
		logger: logger,
	}
}

func (r *AuditLogRepository) Append(ctx context.Context, e *audit.Entry) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		return fmt.Errorf("failed to map audit entry: %w", err)
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	e.SetID(model.ID)
	return nil
}

func (r *AuditLogRepository) ListRecent(ctx context.Context, tenantCNPJ string, limit int) ([]*audit.Entry, error) {
	if limit <= 0 || limit > maxAuditPage {
		limit = maxAuditPage
	}

	var rows []*models.AuditLogModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantCNPJ)).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return r.mapper.ToEntities(rows)
}
