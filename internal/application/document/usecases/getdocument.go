package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/document/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/document"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type GetDocumentQuery struct {
	Session     *session.Context
	DocumentSID string
}

type GetDocumentUseCase struct {
	docRepo document.Repository
	logger  logger.Interface
}

func NewGetDocumentUseCase(docRepo document.Repository, logger logger.Interface) *GetDocumentUseCase {
	return &GetDocumentUseCase{docRepo: docRepo, logger: logger}
}

func (uc *GetDocumentUseCase) Execute(ctx context.Context, query GetDocumentQuery) (*dto.DocumentDTO, error) {
	if err := query.Session.RequireTenant(); err != nil {
		return nil, err
	}
	d, err := loadDocument(ctx, uc.docRepo, query.Session.TenantCNPJ, query.DocumentSID, uc.logger)
	if err != nil {
		return nil, err
	}
	return dto.ToDocumentDTO(d), nil
}

func loadDocument(ctx context.Context, repo document.Repository, tenantCNPJ, sid string, log logger.Interface) (*document.Document, error) {
	d, err := repo.GetBySID(ctx, tenantCNPJ, sid)
	if err != nil {
		log.Errorw("failed to load document", "document_id", sid, "error", err)
		return nil, errors.NewInternalError("failed to load document")
	}
	if d == nil {
		return nil, errors.NewNotFoundError("document not found", sid)
	}
	return d, nil
}
