package tenant

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/application/tenant/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/tenant/usecases"
)

type onboardTenantUseCase interface {
	Execute(ctx context.Context, cmd usecases.OnboardTenantCommand) (*usecases.OnboardTenantResult, error)
}

type getTenantUseCase interface {
	Execute(ctx context.Context, sc *session.Context) (*dto.TenantDTO, error)
}

type updateCompanyDataUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateCompanyDataCommand) (*dto.TenantDTO, error)
}

type updateSettingsUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateSettingsCommand) (*dto.TenantDTO, error)
}

type updateBrandingUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateBrandingCommand) (*dto.TenantDTO, error)
}

type uploadLogoUseCase interface {
	Execute(ctx context.Context, cmd usecases.UploadLogoCommand) (*dto.TenantDTO, error)
}

type listDepartmentsUseCase interface {
	Execute(ctx context.Context, sc *session.Context) ([]*dto.DepartmentDTO, error)
}
