package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lexdoc-ai/lexdoc/internal/domain/tenant"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/mappers"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/models"
	"github.com/lexdoc-ai/lexdoc/internal/shared/db"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

// TenantRepositoryImpl implements tenant.Repository.
type TenantRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TenantMapper
	logger logger.Interface
}

func NewTenantRepository(gdb *gorm.DB, logger logger.Interface) tenant.Repository {
	return &TenantRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewTenantMapper(),
		logger: logger,
	}
}

func (r *TenantRepositoryImpl) Create(ctx context.Context, t *tenant.Tenant) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return fmt.Errorf("failed to map tenant entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if cerr := conflictOr(err, "an office with this CNPJ is already registered"); cerr != nil {
			return cerr
		}
		r.logger.Errorw("failed to create tenant", "cnpj", t.CNPJ(), "error", err)
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	t.SetID(model.ID)
	r.logger.Infow("tenant created", "id", model.ID, "cnpj", model.CNPJ)
	return nil
}

func (r *TenantRepositoryImpl) Update(ctx context.Context, t *tenant.Tenant) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return fmt.Errorf("failed to map tenant entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.TenantModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"trade_name":      model.TradeName,
			"legal_name":      model.LegalName,
			"address":         model.Address,
			"phone":           model.Phone,
			"contact_email":   model.ContactEmail,
			"logo_url":        model.LogoURL,
			"primary_color":   model.PrimaryColor,
			"secondary_color": model.SecondaryColor,
			"settings":        model.Settings,
			"ml_metrics":      model.MLMetrics,
			"active":          model.Active,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update tenant", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update tenant: %w", result.Error)
	}
	return nil
}

func (r *TenantRepositoryImpl) GetByCNPJ(ctx context.Context, cnpj string) (*tenant.Tenant, error) {
	var model models.TenantModel
	if err := db.GetTxFromContext(ctx, r.db).Where("cnpj = ?", cnpj).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get tenant by CNPJ", "cnpj", cnpj, "error", err)
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *TenantRepositoryImpl) ExistsByCNPJ(ctx context.Context, cnpj string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.TenantModel{}).Where("cnpj = ?", cnpj).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check tenant existence: %w", err)
	}
	return count > 0, nil
}

// DepartmentRepositoryImpl implements tenant.DepartmentRepository.
type DepartmentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TenantMapper
	logger logger.Interface
}

func NewDepartmentRepository(gdb *gorm.DB, logger logger.Interface) tenant.DepartmentRepository {
	return &DepartmentRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewTenantMapper(),
		logger: logger,
	}
}

func (r *DepartmentRepositoryImpl) Create(ctx context.Context, d *tenant.Department) error {
	model, err := r.mapper.DepartmentToModel(d)
	if err != nil {
		return fmt.Errorf("failed to map department entity: %w", err)
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create department", "tenant", d.TenantCNPJ(), "name", d.Name(), "error", err)
		return fmt.Errorf("failed to create department: %w", err)
	}
	d.SetID(model.ID)
	return nil
}

func (r *DepartmentRepositoryImpl) ListByTenant(ctx context.Context, tenantCNPJ string) ([]*tenant.Department, error) {
	var rows []*models.DepartmentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantCNPJ)).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return r.mapper.DepartmentsToEntities(rows)
}
