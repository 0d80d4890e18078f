package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/application/tenant/dto"
	"github.com/lexdoc-ai/lexdoc/internal/domain/tenant"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

// UpdateBrandingCommand carries the new colours. An empty colour keeps the
// current one.
type UpdateBrandingCommand struct {
	Session        *session.Context
	PrimaryColor   string
	SecondaryColor string
}

type UpdateBrandingUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewUpdateBrandingUseCase(tenantRepo tenant.Repository, logger logger.Interface) *UpdateBrandingUseCase {
	return &UpdateBrandingUseCase{tenantRepo: tenantRepo, logger: logger}
}

func (uc *UpdateBrandingUseCase) Execute(ctx context.Context, cmd UpdateBrandingCommand) (*dto.TenantDTO, error) {
	if err := cmd.Session.RequireAdmin(); err != nil {
		return nil, err
	}

	t, err := loadTenant(ctx, uc.tenantRepo, cmd.Session.TenantCNPJ, uc.logger)
	if err != nil {
		return nil, err
	}

	primary, secondary := cmd.PrimaryColor, cmd.SecondaryColor
	if primary == "" {
		primary = t.PrimaryColor()
	}
	if secondary == "" {
		secondary = t.SecondaryColor()
	}
	if err := t.UpdateBranding(primary, secondary); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := saveTenant(ctx, uc.tenantRepo, t, uc.logger); err != nil {
		return nil, err
	}
	return dto.ToTenantDTO(t), nil
}
