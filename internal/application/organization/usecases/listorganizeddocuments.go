package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/organization/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/organization"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/organization/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"
)

type ListOrganizedDocumentsQuery struct {
	Session  *session.Context
	BatchID  string
	Sector   *string
	Status   *string
	Page     int
	PageSize int
}

type ListOrganizedDocumentsResult struct {
	Documents  []*dto.OrganizedDocumentDTO
	TotalCount int64
	Page       int
	PageSize   int
}

type ListOrganizedDocumentsUseCase struct {
	repo   organization.Repository
	logger logger.Interface
}

func NewListOrganizedDocumentsUseCase(repo organization.Repository, logger logger.Interface) *ListOrganizedDocumentsUseCase {
	return &ListOrganizedDocumentsUseCase{repo: repo, logger: logger}
}

func (uc *ListOrganizedDocumentsUseCase) Execute(ctx context.Context, query ListOrganizedDocumentsQuery) (*ListOrganizedDocumentsResult, error) {
	if err := query.Session.RequireTenant(); err != nil {
		return nil, err
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	query.Page, query.PageSize = p.Page, p.PageSize

	filter := organization.Filter{
		TenantCNPJ: query.Session.TenantCNPJ,
		BatchID:    query.BatchID,
		Page:       query.Page,
		PageSize:   query.PageSize,
		SortBy:     "created_at",
		SortOrder:  "desc",
	}
	if query.Sector != nil && *query.Sector != "" {
		s, err := vo.NewSector(*query.Sector)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Sector = &s
	}
	if query.Status != nil && *query.Status != "" {
		s := vo.OrganizationStatus(*query.Status)
		if !s.IsValid() {
			return nil, errors.NewValidationError("invalid organization status", *query.Status)
		}
		filter.Status = &s
	}

	docs, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list organized documents", "error", err)
		return nil, errors.NewInternalError("failed to list organized documents")
	}

	return &ListOrganizedDocumentsResult{
		Documents:  dto.ToOrganizedDocumentDTOs(docs),
		TotalCount: total,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}, nil
}
