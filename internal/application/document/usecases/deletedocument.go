package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/document"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type DeleteDocumentCommand struct {
	Session     *session.Context
	DocumentSID string
}

// DeleteDocumentUseCase removes the document row and then its stored file.
// Filings generated from it are kept.
type DeleteDocumentUseCase struct {
	docRepo document.Repository
	storage services.FileStorage
	logger  logger.Interface
}

func NewDeleteDocumentUseCase(docRepo document.Repository, storage services.FileStorage, logger logger.Interface) *DeleteDocumentUseCase {
	return &DeleteDocumentUseCase{docRepo: docRepo, storage: storage, logger: logger}
}

func (uc *DeleteDocumentUseCase) Execute(ctx context.Context, cmd DeleteDocumentCommand) error {
	if err := cmd.Session.RequireTenant(); err != nil {
		return err
	}
	d, err := loadDocument(ctx, uc.docRepo, cmd.Session.TenantCNPJ, cmd.DocumentSID, uc.logger)
	if err != nil {
		return err
	}

	if err := uc.docRepo.Delete(ctx, d.TenantCNPJ(), d.SID()); err != nil {
		uc.logger.Errorw("failed to delete document", "document_id", d.SID(), "error", err)
		return errors.NewInternalError("failed to delete document")
	}

	if key := d.StorageKey(); key != "" {
		if err := uc.storage.Remove(ctx, key); err != nil {
			uc.logger.Warnw("failed to remove stored file", "document_id", d.SID(), "key", key, "error", err)
		}
	}

	uc.logger.Infow("document deleted", "document_id", d.SID(), "cnpj", d.TenantCNPJ())
	return nil
}
