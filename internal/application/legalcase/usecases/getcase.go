package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/legalcase/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/document"
	"github.com/lexdoc-ai/lexdoc/internal/domain/filing"
	"github.com/lexdoc-ai/lexdoc/internal/domain/legalcase"
	"github.com/lexdoc-ai/lexdoc/internal/shared/constants"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/mapper"
)

type GetCaseQuery struct {
	Session *session.Context
	CaseSID string
}

// GetCaseUseCase returns the case with the documents and filings linked to it.
type GetCaseUseCase struct {
	caseRepo   legalcase.Repository
	docRepo    document.Repository
	filingRepo filing.Repository
	logger     logger.Interface
}

func NewGetCaseUseCase(caseRepo legalcase.Repository, docRepo document.Repository, filingRepo filing.Repository, logger logger.Interface) *GetCaseUseCase {
	return &GetCaseUseCase{caseRepo: caseRepo, docRepo: docRepo, filingRepo: filingRepo, logger: logger}
}

func (uc *GetCaseUseCase) Execute(ctx context.Context, query GetCaseQuery) (*dto.CaseDetailDTO, error) {
	if err := query.Session.RequireTenant(); err != nil {
		return nil, err
	}
	c, err := loadCase(ctx, uc.caseRepo, query.Session.TenantCNPJ, query.CaseSID, uc.logger)
	if err != nil {
		return nil, err
	}

	caseSID := c.SID()
	docs, _, err := uc.docRepo.List(ctx, document.Filter{
		TenantCNPJ: c.TenantCNPJ(),
		CaseSID:    &caseSID,
		Page:       1,
		PageSize:   constants.MaxPageSize,
		SortBy:     "created_at",
		SortOrder:  "desc",
	})
	if err != nil {
		uc.logger.Errorw("failed to list case documents", "case_id", caseSID, "error", err)
		return nil, errors.NewInternalError("failed to load case documents")
	}
	filings, _, err := uc.filingRepo.List(ctx, filing.Filter{
		TenantCNPJ: c.TenantCNPJ(),
		CaseSID:    &caseSID,
		Page:       1,
		PageSize:   constants.MaxPageSize,
		SortBy:     "created_at",
		SortOrder:  "desc",
	})
	if err != nil {
		uc.logger.Errorw("failed to list case filings", "case_id", caseSID, "error", err)
		return nil, errors.NewInternalError("failed to load case filings")
	}

	detail := &dto.CaseDetailDTO{
		CaseDTO:   dto.ToCaseDTO(c),
		Documents: mapper.MapSlice(docs, dto.ToCaseDocumentDTO),
		Filings:   mapper.MapSlice(filings, dto.ToCaseFilingDTO),
	}
	if detail.Documents == nil {
		detail.Documents = []*dto.CaseDocumentDTO{}
	}
	if detail.Filings == nil {
		detail.Filings = []*dto.CaseFilingDTO{}
	}
	return detail, nil
}

func loadCase(ctx context.Context, repo legalcase.Repository, tenantCNPJ, sid string, log logger.Interface) (*legalcase.Case, error) {
	c, err := repo.GetBySID(ctx, tenantCNPJ, sid)
	if err != nil {
		log.Errorw("failed to load case", "case_id", sid, "error", err)
		return nil, errors.NewInternalError("failed to load case")
	}
	if c == nil {
		return nil, errors.NewNotFoundError("case not found", sid)
	}
	return c, nil
}
