package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/accessrequest/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/accessrequest"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

// ListAccessRequestsQuery defaults to pending requests.
type ListAccessRequestsQuery struct {
	Session *session.Context
	Status  string
}

type ListAccessRequestsUseCase struct {
	requestRepo accessrequest.Repository
	logger      logger.Interface
}

func NewListAccessRequestsUseCase(requestRepo accessrequest.Repository, logger logger.Interface) *ListAccessRequestsUseCase {
	return &ListAccessRequestsUseCase{requestRepo: requestRepo, logger: logger}
}

func (uc *ListAccessRequestsUseCase) Execute(ctx context.Context, query ListAccessRequestsQuery) ([]*dto.AccessRequestDTO, error) {
	if err := query.Session.RequireAdmin(); err != nil {
		return nil, err
	}

	status := accessrequest.StatusPending
	if query.Status != "" {
		status = accessrequest.Status(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid access request status", query.Status)
		}
	}

	rs, err := uc.requestRepo.ListByStatus(ctx, query.Session.TenantCNPJ, status)
	if err != nil {
		uc.logger.Errorw("failed to list access requests", "cnpj", query.Session.TenantCNPJ, "error", err)
		return nil, errors.NewInternalError("failed to list access requests")
	}
	return dto.ToAccessRequestDTOs(rs), nil
}
