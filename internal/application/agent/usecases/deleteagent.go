package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/agent"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type DeleteAgentCommand struct {
	Session  *session.Context
	AgentSID string
}

// DeleteAgentUseCase removes an agent. Documents and filings keep the agent
// name they were produced with.
type DeleteAgentUseCase struct {
	agentRepo agent.Repository
	logger    logger.Interface
}

func NewDeleteAgentUseCase(agentRepo agent.Repository, logger logger.Interface) *DeleteAgentUseCase {
	return &DeleteAgentUseCase{agentRepo: agentRepo, logger: logger}
}

func (uc *DeleteAgentUseCase) Execute(ctx context.Context, cmd DeleteAgentCommand) error {
	if err := cmd.Session.RequireTenant(); err != nil {
		return err
	}
	a, err := loadAgent(ctx, uc.agentRepo, cmd.Session.TenantCNPJ, cmd.AgentSID, uc.logger)
	if err != nil {
		return err
	}
	if err := uc.agentRepo.Delete(ctx, a.TenantCNPJ(), a.SID()); err != nil {
		uc.logger.Errorw("failed to delete agent", "agent_id", a.SID(), "error", err)
		return errors.NewInternalError("failed to delete agent")
	}
	uc.logger.Infow("agent deleted", "agent_id", a.SID())
	return nil
}
