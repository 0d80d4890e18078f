package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/document/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/document"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/document/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"
)

type ListDocumentsQuery struct {
	Session   *session.Context
	Status    string
	CaseSID   string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListDocumentsResult struct {
	Documents  []*dto.DocumentDTO
	TotalCount int64
	Page       int
	PageSize   int
}

type ListDocumentsUseCase struct {
	docRepo document.Repository
	logger  logger.Interface
}

func NewListDocumentsUseCase(docRepo document.Repository, logger logger.Interface) *ListDocumentsUseCase {
	return &ListDocumentsUseCase{docRepo: docRepo, logger: logger}
}

func (uc *ListDocumentsUseCase) Execute(ctx context.Context, query ListDocumentsQuery) (*ListDocumentsResult, error) {
	if err := query.Session.RequireTenant(); err != nil {
		return nil, err
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	filter := document.Filter{
		TenantCNPJ: query.Session.TenantCNPJ,
		Page:       p.Page,
		PageSize:   p.PageSize,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	}
	if filter.SortBy == "" {
		filter.SortBy, filter.SortOrder = "created_at", "desc"
	}
	if query.Status != "" {
		s, err := vo.NewProcessingStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &s
	}
	if query.CaseSID != "" {
		caseSID := query.CaseSID
		filter.CaseSID = &caseSID
	}

	docs, total, err := uc.docRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list documents", "cnpj", filter.TenantCNPJ, "error", err)
		return nil, errors.NewInternalError("failed to list documents")
	}

	return &ListDocumentsResult{
		Documents:  dto.ToDocumentSummaryDTOs(docs),
		TotalCount: total,
		Page:       p.Page,
		PageSize:   p.PageSize,
	}, nil
}
