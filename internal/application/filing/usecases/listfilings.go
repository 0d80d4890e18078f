package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/filing/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/filing"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/filing/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"
)

type ListFilingsQuery struct {
	Session   *session.Context
	Status    string
	Type      string
	CaseSID   string
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListFilingsResult struct {
	Filings    []*dto.FilingDTO
	TotalCount int64
	Page       int
	PageSize   int
}

type ListFilingsUseCase struct {
	filingRepo filing.Repository
	logger     logger.Interface
}

func NewListFilingsUseCase(filingRepo filing.Repository, logger logger.Interface) *ListFilingsUseCase {
	return &ListFilingsUseCase{filingRepo: filingRepo, logger: logger}
}

func (uc *ListFilingsUseCase) Execute(ctx context.Context, query ListFilingsQuery) (*ListFilingsResult, error) {
	if err := query.Session.RequireTenant(); err != nil {
		return nil, err
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	filter := filing.Filter{
		TenantCNPJ: query.Session.TenantCNPJ,
		Search:     query.Search,
		Page:       p.Page,
		PageSize:   p.PageSize,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	}
	if filter.SortBy == "" {
		filter.SortBy, filter.SortOrder = "created_at", "desc"
	}
	if query.Status != "" {
		s, err := vo.NewFilingStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &s
	}
	if query.Type != "" {
		t := vo.FilingType(query.Type)
		if !t.IsValid() {
			return nil, errors.NewValidationError("invalid filing type: " + query.Type)
		}
		filter.Type = &t
	}
	if query.CaseSID != "" {
		caseSID := query.CaseSID
		filter.CaseSID = &caseSID
	}

	filings, total, err := uc.filingRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list filings", "cnpj", filter.TenantCNPJ, "error", err)
		return nil, errors.NewInternalError("failed to list filings")
	}

	return &ListFilingsResult{
		Filings:    dto.ToFilingSummaryDTOs(filings),
		TotalCount: total,
		Page:       p.Page,
		PageSize:   p.PageSize,
	}, nil
}
