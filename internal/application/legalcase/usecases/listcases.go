package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/legalcase/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/legalcase"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/legalcase/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"
)

type ListCasesQuery struct {
	Session   *session.Context
	Status    string
	Area      string
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListCasesResult struct {
	Cases      []*dto.CaseDTO
	TotalCount int64
	Page       int
	PageSize   int
}

type ListCasesUseCase struct {
	caseRepo legalcase.Repository
	logger   logger.Interface
}

func NewListCasesUseCase(caseRepo legalcase.Repository, logger logger.Interface) *ListCasesUseCase {
	return &ListCasesUseCase{caseRepo: caseRepo, logger: logger}
}

func (uc *ListCasesUseCase) Execute(ctx context.Context, query ListCasesQuery) (*ListCasesResult, error) {
	if err := query.Session.RequireTenant(); err != nil {
		return nil, err
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	filter := legalcase.Filter{
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
		s, err := vo.NewCaseStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &s
	}
	if query.Area != "" {
		a, err := vo.NewLegalArea(query.Area)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Area = &a
	}

	cases, total, err := uc.caseRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list cases", "cnpj", filter.TenantCNPJ, "error", err)
		return nil, errors.NewInternalError("failed to list cases")
	}

	return &ListCasesResult{
		Cases:      dto.ToCaseDTOs(cases),
		TotalCount: total,
		Page:       p.Page,
		PageSize:   p.PageSize,
	}, nil
}
