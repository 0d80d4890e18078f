package usecases

import (
	"context"
	"fmt"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/document"
	"github.com/lexdoc-ai/lexdoc/internal/domain/filing"
	"github.com/lexdoc-ai/lexdoc/internal/domain/legalcase"
	"github.com/lexdoc-ai/lexdoc/internal/shared/db"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type DeleteCaseCommand struct {
	Session *session.Context
	CaseSID string
}

// DeleteCaseUseCase removes a case. Documents and filings survive with
// their case reference cleared, in the same transaction as the delete.
type DeleteCaseUseCase struct {
	caseRepo   legalcase.Repository
	docRepo    document.Repository
	filingRepo filing.Repository
	tx         db.Transactor
	logger     logger.Interface
}

func NewDeleteCaseUseCase(
	caseRepo legalcase.Repository,
	docRepo document.Repository,
	filingRepo filing.Repository,
	tx db.Transactor,
	logger logger.Interface,
) *DeleteCaseUseCase {
	return &DeleteCaseUseCase{
		caseRepo:   caseRepo,
		docRepo:    docRepo,
		filingRepo: filingRepo,
		tx:         tx,
		logger:     logger,
	}
}

func (uc *DeleteCaseUseCase) Execute(ctx context.Context, cmd DeleteCaseCommand) error {
	if err := cmd.Session.RequireTenant(); err != nil {
		return err
	}
	c, err := loadCase(ctx, uc.caseRepo, cmd.Session.TenantCNPJ, cmd.CaseSID, uc.logger)
	if err != nil {
		return err
	}

	var docs, filings int64
	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		if docs, err = uc.docRepo.DetachCase(txCtx, c.TenantCNPJ(), c.SID()); err != nil {
			return fmt.Errorf("failed to detach documents: %w", err)
		}
		if filings, err = uc.filingRepo.DetachCase(txCtx, c.TenantCNPJ(), c.SID()); err != nil {
			return fmt.Errorf("failed to detach filings: %w", err)
		}
		if err := uc.caseRepo.Delete(txCtx, c.TenantCNPJ(), c.SID()); err != nil {
			return fmt.Errorf("failed to delete case: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to delete case", "case_id", c.SID(), "error", err)
		return errors.NewInternalError("failed to delete case")
	}

	uc.logger.Infow("case deleted",
		"case_id", c.SID(),
		"detached_documents", docs,
		"detached_filings", filings,
		"by", cmd.Session.Email,
	)
	return nil
}
