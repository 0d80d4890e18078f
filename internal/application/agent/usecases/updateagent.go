package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/agent/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/agent"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/agent/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type UpdateAgentCommand struct {
	Session            *session.Context
	AgentSID           string
	Name               *string
	Description        *string
	Instructions       *string
	Keywords           []string
	Personality        *vo.Personality
	Model              *string
	Temperature        *float64
	MaxTokens          *int
	Language           *string
	PostAnalysisAction *string
	Status             *string
}

type UpdateAgentUseCase struct {
	agentRepo agent.Repository
	logger    logger.Interface
}

func NewUpdateAgentUseCase(agentRepo agent.Repository, logger logger.Interface) *UpdateAgentUseCase {
	return &UpdateAgentUseCase{agentRepo: agentRepo, logger: logger}
}

func (uc *UpdateAgentUseCase) Execute(ctx context.Context, cmd UpdateAgentCommand) (*dto.AgentDTO, error) {
	if err := cmd.Session.RequireTenant(); err != nil {
		return nil, err
	}
	a, err := loadAgent(ctx, uc.agentRepo, cmd.Session.TenantCNPJ, cmd.AgentSID, uc.logger)
	if err != nil {
		return nil, err
	}

	upd := agent.AgentUpdate{
		Name:         cmd.Name,
		Description:  cmd.Description,
		Instructions: cmd.Instructions,
		Keywords:     cmd.Keywords,
		Personality:  cmd.Personality,
		Model:        cmd.Model,
		Temperature:  cmd.Temperature,
		MaxTokens:    cmd.MaxTokens,
	}
	if cmd.Language != nil {
		l := vo.Language(*cmd.Language)
		upd.Language = &l
	}
	if cmd.PostAnalysisAction != nil {
		pa := vo.PostAnalysisAction(*cmd.PostAnalysisAction)
		upd.PostAnalysisAction = &pa
	}
	if cmd.Status != nil {
		s := vo.AgentStatus(*cmd.Status)
		upd.Status = &s
	}
	if err := a.Apply(upd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.agentRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to update agent", "agent_id", a.SID(), "error", err)
		return nil, errors.NewInternalError("failed to update agent")
	}

	uc.logger.Infow("agent updated", "agent_id", a.SID())
	return dto.ToAgentDTO(a), nil
}
