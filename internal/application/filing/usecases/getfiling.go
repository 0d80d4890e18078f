package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/filing/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/filing"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type GetFilingQuery struct {
	Session   *session.Context
	FilingSID string
}

type GetFilingUseCase struct {
	filingRepo filing.Repository
	logger     logger.Interface
}

func NewGetFilingUseCase(filingRepo filing.Repository, logger logger.Interface) *GetFilingUseCase {
	return &GetFilingUseCase{filingRepo: filingRepo, logger: logger}
}

func (uc *GetFilingUseCase) Execute(ctx context.Context, query GetFilingQuery) (*dto.FilingDTO, error) {
	if err := query.Session.RequireTenant(); err != nil {
		return nil, err
	}
	f, err := loadFiling(ctx, uc.filingRepo, query.Session.TenantCNPJ, query.FilingSID, uc.logger)
	if err != nil {
		return nil, err
	}
	return dto.ToFilingDTO(f), nil
}

func loadFiling(ctx context.Context, repo filing.Repository, tenantCNPJ, sid string, log logger.Interface) (*filing.Filing, error) {
	f, err := repo.GetBySID(ctx, tenantCNPJ, sid)
	if err != nil {
		log.Errorw("failed to load filing", "filing_id", sid, "error", err)
		return nil, errors.NewInternalError("failed to load filing")
	}
	if f == nil {
		return nil, errors.NewNotFoundError("filing not found", sid)
	}
	return f, nil
}
