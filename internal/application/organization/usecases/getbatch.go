package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/organization/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/organization"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type GetBatchQuery struct {
	Session *session.Context
	BatchID string
}

type GetBatchUseCase struct {
	batches organization.BatchStore
	logger  logger.Interface
}

func NewGetBatchUseCase(batches organization.BatchStore, logger logger.Interface) *GetBatchUseCase {
	return &GetBatchUseCase{batches: batches, logger: logger}
}

func (uc *GetBatchUseCase) Execute(ctx context.Context, query GetBatchQuery) (*dto.BatchDTO, error) {
	if err := query.Session.RequireTenant(); err != nil {
		return nil, err
	}

	b, err := uc.batches.Get(ctx, query.Session.TenantCNPJ, query.BatchID)
	if err != nil {
		uc.logger.Errorw("failed to read batch progress", "batch_id", query.BatchID, "error", err)
		return nil, errors.NewInternalError("failed to read batch progress")
	}
	if b == nil {
		return nil, errors.NewNotFoundError("batch not found", query.BatchID)
	}
	return dto.ToBatchDTO(b), nil
}
