package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/agent/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/agent"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type ToggleAgentCommand struct {
	Session  *session.Context
	AgentSID string
}

type ToggleAgentUseCase struct {
	agentRepo agent.Repository
	logger    logger.Interface
}

func NewToggleAgentUseCase(agentRepo agent.Repository, logger logger.Interface) *ToggleAgentUseCase {
	return &ToggleAgentUseCase{agentRepo: agentRepo, logger: logger}
}

func (uc *ToggleAgentUseCase) Execute(ctx context.Context, cmd ToggleAgentCommand) (*dto.AgentDTO, error) {
	if err := cmd.Session.RequireTenant(); err != nil {
		return nil, err
	}
	a, err := loadAgent(ctx, uc.agentRepo, cmd.Session.TenantCNPJ, cmd.AgentSID, uc.logger)
	if err != nil {
		return nil, err
	}

	a.ToggleStatus()
	if err := uc.agentRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to toggle agent", "agent_id", a.SID(), "error", err)
		return nil, errors.NewInternalError("failed to change agent status")
	}

	uc.logger.Infow("agent status changed", "agent_id", a.SID(), "status", a.Status())
	return dto.ToAgentDTO(a), nil
}
