package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/application/tenant/dto"
	"github.com/lexdoc-ai/lexdoc/internal/domain/tenant"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type UpdateCompanyDataCommand struct {
	Session      *session.Context
	TradeName    string
	LegalName    string
	Address      string
	Phone        string
	ContactEmail string
}

type UpdateCompanyDataUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewUpdateCompanyDataUseCase(tenantRepo tenant.Repository, logger logger.Interface) *UpdateCompanyDataUseCase {
	return &UpdateCompanyDataUseCase{tenantRepo: tenantRepo, logger: logger}
}

func (uc *UpdateCompanyDataUseCase) Execute(ctx context.Context, cmd UpdateCompanyDataCommand) (*dto.TenantDTO, error) {
	if err := cmd.Session.RequireAdmin(); err != nil {
		return nil, err
	}

	t, err := loadTenant(ctx, uc.tenantRepo, cmd.Session.TenantCNPJ, uc.logger)
	if err != nil {
		return nil, err
	}
	if err := t.UpdateCompanyData(cmd.TradeName, cmd.LegalName, cmd.Address, cmd.Phone, cmd.ContactEmail); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := saveTenant(ctx, uc.tenantRepo, t, uc.logger); err != nil {
		return nil, err
	}

	uc.logger.Infow("company data updated", "cnpj", t.CNPJ(), "by", cmd.Session.Email)
	return dto.ToTenantDTO(t), nil
}
