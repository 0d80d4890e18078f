package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/application/tenant/dto"
	"github.com/lexdoc-ai/lexdoc/internal/domain/tenant"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type GetTenantUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewGetTenantUseCase(tenantRepo tenant.Repository, logger logger.Interface) *GetTenantUseCase {
	return &GetTenantUseCase{tenantRepo: tenantRepo, logger: logger}
}

func (uc *GetTenantUseCase) Execute(ctx context.Context, sc *session.Context) (*dto.TenantDTO, error) {
	if err := sc.RequireTenant(); err != nil {
		return nil, err
	}
	t, err := loadTenant(ctx, uc.tenantRepo, sc.TenantCNPJ, uc.logger)
	if err != nil {
		return nil, err
	}
	return dto.ToTenantDTO(t), nil
}

func loadTenant(ctx context.Context, repo tenant.Repository, cnpj string, log logger.Interface) (*tenant.Tenant, error) {
	t, err := repo.GetByCNPJ(ctx, cnpj)
	if err != nil {
		log.Errorw("failed to load tenant", "cnpj", cnpj, "error", err)
		return nil, errors.NewInternalError("failed to load office")
	}
	if t == nil {
		return nil, errors.NewNotFoundError("office not found", cnpj)
	}
	return t, nil
}

func saveTenant(ctx context.Context, repo tenant.Repository, t *tenant.Tenant, log logger.Interface) error {
	if err := repo.Update(ctx, t); err != nil {
		log.Errorw("failed to update tenant", "cnpj", t.CNPJ(), "error", err)
		return errors.NewInternalError("failed to update office")
	}
	return nil
}
