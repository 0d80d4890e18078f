package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/agent/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/agent"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/agent/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"
)

type ListAgentsQuery struct {
	Session  *session.Context
	Status   string
	Search   string
	Page     int
	PageSize int
}

type ListAgentsResult struct {
	Agents     []*dto.AgentDTO
	TotalCount int64
	Page       int
	PageSize   int
}

type ListAgentsUseCase struct {
	agentRepo agent.Repository
	logger    logger.Interface
}

func NewListAgentsUseCase(agentRepo agent.Repository, logger logger.Interface) *ListAgentsUseCase {
	return &ListAgentsUseCase{agentRepo: agentRepo, logger: logger}
}

func (uc *ListAgentsUseCase) Execute(ctx context.Context, query ListAgentsQuery) (*ListAgentsResult, error) {
	if err := query.Session.RequireTenant(); err != nil {
		return nil, err
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	filter := agent.Filter{
		TenantCNPJ: query.Session.TenantCNPJ,
		Search:     query.Search,
		Page:       p.Page,
		PageSize:   p.PageSize,
		SortBy:     "created_at",
		SortOrder:  "desc",
	}
	if query.Status != "" {
		s, err := vo.NewAgentStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &s
	}

	agents, total, err := uc.agentRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list agents", "cnpj", filter.TenantCNPJ, "error", err)
		return nil, errors.NewInternalError("failed to list agents")
	}

	return &ListAgentsResult{
		Agents:     dto.ToAgentDTOs(agents),
		TotalCount: total,
		Page:       p.Page,
		PageSize:   p.PageSize,
	}, nil
}
