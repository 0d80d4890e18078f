package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/audit/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

type ListAuditLogsQuery struct {
	Session *session.Context
	Limit   int
}

// ListAuditLogsUseCase returns the most recent audit entries of the office.
type ListAuditLogsUseCase struct {
	auditRepo audit.Repository
	logger    logger.Interface
}

func NewListAuditLogsUseCase(auditRepo audit.Repository, logger logger.Interface) *ListAuditLogsUseCase {
	return &ListAuditLogsUseCase{auditRepo: auditRepo, logger: logger}
}

func (uc *ListAuditLogsUseCase) Execute(ctx context.Context, query ListAuditLogsQuery) ([]*dto.AuditLogDTO, error) {
	if err := query.Session.RequireAdmin(); err != nil {
		return nil, err
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	entries, err := uc.auditRepo.ListRecent(ctx, query.Session.TenantCNPJ, limit)
	if err != nil {
		uc.logger.Errorw("failed to list audit logs", "cnpj", query.Session.TenantCNPJ, "error", err)
		return nil, errors.NewInternalError("failed to list audit logs")
	}
	return dto.ToAuditLogDTOs(entries), nil
}
