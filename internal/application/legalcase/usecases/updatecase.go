package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/legalcase/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/legalcase"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type UpdateCaseCommand struct {
	Session *session.Context
	CaseSID string
	Update  legalcase.CaseUpdate
}

type UpdateCaseUseCase struct {
	caseRepo legalcase.Repository
	logger   logger.Interface
}

func NewUpdateCaseUseCase(caseRepo legalcase.Repository, logger logger.Interface) *UpdateCaseUseCase {
	return &UpdateCaseUseCase{caseRepo: caseRepo, logger: logger}
}

func (uc *UpdateCaseUseCase) Execute(ctx context.Context, cmd UpdateCaseCommand) (*dto.CaseDTO, error) {
	if err := cmd.Session.RequireTenant(); err != nil {
		return nil, err
	}
	c, err := loadCase(ctx, uc.caseRepo, cmd.Session.TenantCNPJ, cmd.CaseSID, uc.logger)
	if err != nil {
		return nil, err
	}

	if err := c.Apply(cmd.Update); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.caseRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update case", "case_id", c.SID(), "error", err)
		return nil, errors.NewInternalError("failed to update case")
	}

	uc.logger.Infow("case updated", "case_id", c.SID(), "by", cmd.Session.Email)
	return dto.ToCaseDTO(c), nil
}
