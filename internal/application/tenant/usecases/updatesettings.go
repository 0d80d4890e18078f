package usecases

import (
	"context"
	"strings"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/application/tenant/dto"
	"github.com/lexdoc-ai/lexdoc/internal/domain/tenant"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type UpdateSettingsCommand struct {
	Session *session.Context
	Update  tenant.SettingsUpdate
}

// UpdateSettingsUseCase merges the AI switches into configuracoes.
type UpdateSettingsUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewUpdateSettingsUseCase(tenantRepo tenant.Repository, logger logger.Interface) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{tenantRepo: tenantRepo, logger: logger}
}

func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, cmd UpdateSettingsCommand) (*dto.TenantDTO, error) {
	if err := cmd.Session.RequireAdmin(); err != nil {
		return nil, err
	}
	if m := cmd.Update.PreferredAIModel; m != nil && strings.TrimSpace(*m) == "" {
		return nil, errors.NewValidationError("preferred AI model cannot be empty")
	}

	t, err := loadTenant(ctx, uc.tenantRepo, cmd.Session.TenantCNPJ, uc.logger)
	if err != nil {
		return nil, err
	}
	t.ApplySettings(cmd.Update)
	if err := saveTenant(ctx, uc.tenantRepo, t, uc.logger); err != nil {
		return nil, err
	}

	uc.logger.Infow("tenant settings updated", "cnpj", t.CNPJ(), "by", cmd.Session.Email)
	return dto.ToTenantDTO(t), nil
}
