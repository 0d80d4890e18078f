package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/filing/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/filing"
	"github.com/lexdoc-ai/lexdoc/internal/domain/legalcase"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type LinkCaseCommand struct {
	Session   *session.Context
	FilingSID string
	CaseSID   string
}

type LinkCaseUseCase struct {
	filingRepo filing.Repository
	caseRepo   legalcase.Repository
	logger     logger.Interface
}

func NewLinkCaseUseCase(filingRepo filing.Repository, caseRepo legalcase.Repository, logger logger.Interface) *LinkCaseUseCase {
	return &LinkCaseUseCase{filingRepo: filingRepo, caseRepo: caseRepo, logger: logger}
}

func (uc *LinkCaseUseCase) Execute(ctx context.Context, cmd LinkCaseCommand) (*dto.FilingDTO, error) {
	if err := cmd.Session.RequireTenant(); err != nil {
		return nil, err
	}
	if cmd.CaseSID == "" {
		return nil, errors.NewValidationError("caso_id is required")
	}
	tenantCNPJ := cmd.Session.TenantCNPJ

	f, err := loadFiling(ctx, uc.filingRepo, tenantCNPJ, cmd.FilingSID, uc.logger)
	if err != nil {
		return nil, err
	}
	c, err := uc.caseRepo.GetBySID(ctx, tenantCNPJ, cmd.CaseSID)
	if err != nil {
		uc.logger.Errorw("failed to load case", "case_id", cmd.CaseSID, "error", err)
		return nil, errors.NewInternalError("failed to load case")
	}
	if c == nil {
		return nil, errors.NewNotFoundError("case not found", cmd.CaseSID)
	}

	f.LinkCase(c.SID())
	if err := uc.filingRepo.Update(ctx, f); err != nil {
		uc.logger.Errorw("failed to link filing to case", "filing_id", f.SID(), "case_id", c.SID(), "error", err)
		return nil, errors.NewInternalError("failed to link filing to case")
	}

	uc.logger.Infow("filing linked to case", "filing_id", f.SID(), "case_id", c.SID())
	return dto.ToFilingDTO(f), nil
}
