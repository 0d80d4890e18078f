package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/agent/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/agent"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type GetAgentQuery struct {
	Session  *session.Context
	AgentSID string
}

type GetAgentUseCase struct {
	agentRepo agent.Repository
	logger    logger.Interface
}

func NewGetAgentUseCase(agentRepo agent.Repository, logger logger.Interface) *GetAgentUseCase {
	return &GetAgentUseCase{agentRepo: agentRepo, logger: logger}
}

func (uc *GetAgentUseCase) Execute(ctx context.Context, query GetAgentQuery) (*dto.AgentDTO, error) {
	if err := query.Session.RequireTenant(); err != nil {
		return nil, err
	}
	a, err := loadAgent(ctx, uc.agentRepo, query.Session.TenantCNPJ, query.AgentSID, uc.logger)
	if err != nil {
		return nil, err
	}
	return dto.ToAgentDTO(a), nil
}

func loadAgent(ctx context.Context, repo agent.Repository, tenantCNPJ, sid string, log logger.Interface) (*agent.Agent, error) {
	a, err := repo.GetBySID(ctx, tenantCNPJ, sid)
	if err != nil {
		log.Errorw("failed to load agent", "agent_id", sid, "error", err)
		return nil, errors.NewInternalError("failed to load agent")
	}
	if a == nil {
		return nil, errors.NewNotFoundError("agent not found", sid)
	}
	return a, nil
}
