package usecases

import (
	"context"
	"fmt"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/document"
	"github.com/lexdoc-ai/lexdoc/internal/domain/filing"
	"github.com/lexdoc-ai/lexdoc/internal/shared/db"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type DeleteFilingCommand struct {
	Session   *session.Context
	FilingSID string
}

// DeleteFilingUseCase removes a filing and clears the reference held by its
// origin document, so the document can generate a new one.
type DeleteFilingUseCase struct {
	filingRepo filing.Repository
	docRepo    document.Repository
	tx         db.Transactor
	logger     logger.Interface
}

func NewDeleteFilingUseCase(filingRepo filing.Repository, docRepo document.Repository, tx db.Transactor, logger logger.Interface) *DeleteFilingUseCase {
	return &DeleteFilingUseCase{filingRepo: filingRepo, docRepo: docRepo, tx: tx, logger: logger}
}

func (uc *DeleteFilingUseCase) Execute(ctx context.Context, cmd DeleteFilingCommand) error {
	if err := cmd.Session.RequireTenant(); err != nil {
		return err
	}
	f, err := loadFiling(ctx, uc.filingRepo, cmd.Session.TenantCNPJ, cmd.FilingSID, uc.logger)
	if err != nil {
		return err
	}

	var detached int64
	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		n, err := uc.docRepo.DetachFiling(txCtx, f.TenantCNPJ(), f.SID())
		if err != nil {
			return fmt.Errorf("failed to detach documents: %w", err)
		}
		detached = n
		if err := uc.filingRepo.Delete(txCtx, f.TenantCNPJ(), f.SID()); err != nil {
			return fmt.Errorf("failed to delete filing: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to delete filing", "filing_id", f.SID(), "error", err)
		return errors.NewInternalError("failed to delete filing")
	}

	uc.logger.Infow("filing deleted", "filing_id", f.SID(), "documents_detached", detached)
	return nil
}
