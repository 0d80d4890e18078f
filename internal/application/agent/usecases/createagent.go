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

type CreateAgentCommand struct {
	Session            *session.Context
	Name               string
	Description        string
	Instructions       string
	Keywords           []string
	Personality        *vo.Personality
	Model              string
	Temperature        *float64
	MaxTokens          int
	Language           string
	PostAnalysisAction string
	Status             string
}

// CreateAgentUseCase registers an agent; omitted settings take the defaults.
type CreateAgentUseCase struct {
	agentRepo agent.Repository
	logger    logger.Interface
}

func NewCreateAgentUseCase(agentRepo agent.Repository, logger logger.Interface) *CreateAgentUseCase {
	return &CreateAgentUseCase{agentRepo: agentRepo, logger: logger}
}

func (uc *CreateAgentUseCase) Execute(ctx context.Context, cmd CreateAgentCommand) (*dto.AgentDTO, error) {
	if err := cmd.Session.RequireTenant(); err != nil {
		return nil, err
	}

	a, err := agent.NewAgent(agent.AgentParams{
		TenantCNPJ:         cmd.Session.TenantCNPJ,
		Name:               cmd.Name,
		Description:        cmd.Description,
		Instructions:       cmd.Instructions,
		Keywords:           cmd.Keywords,
		Personality:        cmd.Personality,
		Model:              cmd.Model,
		Temperature:        cmd.Temperature,
		MaxTokens:          cmd.MaxTokens,
		Language:           vo.Language(cmd.Language),
		PostAnalysisAction: vo.PostAnalysisAction(cmd.PostAnalysisAction),
		Status:             vo.AgentStatus(cmd.Status),
		CreatedBy:          cmd.Session.Email,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.agentRepo.Create(ctx, a); err != nil {
		uc.logger.Errorw("failed to create agent", "cnpj", cmd.Session.TenantCNPJ, "error", err)
		return nil, errors.NewInternalError("failed to create agent")
	}

	uc.logger.Infow("agent created", "agent_id", a.SID(), "model", a.Model())
	return dto.ToAgentDTO(a), nil
}
