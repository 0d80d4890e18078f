package mappers

import (
	"fmt"

	"github.com/lexdoc-ai/lexdoc/internal/domain/agent"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/agent/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/models"
	"github.com/lexdoc-ai/lexdoc/internal/shared/mapper"
)

type AgentMapper interface {
	ToEntity(model *models.AgentModel) (*agent.Agent, error)
	ToModel(entity *agent.Agent) (*models.AgentModel, error)
	ToEntities(models []*models.AgentModel) ([]*agent.Agent, error)
}

type AgentMapperImpl struct{}

func NewAgentMapper() AgentMapper {
	return &AgentMapperImpl{}
}

func (m *AgentMapperImpl) ToEntity(model *models.AgentModel) (*agent.Agent, error) {
	if model == nil {
		return nil, nil
	}

	var keywords []string
	if err := fromJSONColumn("keywords", model.Keywords, &keywords); err != nil {
		return nil, err
	}
	triggers := map[string]string{}
	if err := fromJSONColumn("action_triggers", model.ActionTriggers, &triggers); err != nil {
		return nil, err
	}
	personality := vo.DefaultPersonality()
	if err := fromJSONColumn("personality", model.Personality, &personality); err != nil {
		return nil, err
	}

	entity, err := agent.ReconstructAgent(agent.AgentState{
		ID:                 model.ID,
		SID:                model.SID,
		TenantCNPJ:         model.TenantCNPJ,
		Name:               model.Name,
		Description:        model.Description,
		Instructions:       model.Instructions,
		Keywords:           keywords,
		ActionTriggers:     triggers,
		Personality:        personality,
		Model:              model.Model,
		Temperature:        model.Temperature,
		MaxTokens:          model.MaxTokens,
		Language:           vo.Language(model.Language),
		PostAnalysisAction: vo.PostAnalysisAction(model.PostAnalysisAction),
		Status:             vo.AgentStatus(model.Status),
		TotalExecutions:    model.TotalExecutions,
		Metrics: vo.Metrics{
			DocumentsAnalyzed:  model.DocumentsAnalyzed,
			FilingsGenerated:   model.FilingsGenerated,
			SuccessRate:        model.SuccessRate,
			AverageTimeSeconds: model.AverageTimeSeconds,
		},
		LastExecution: model.LastExecution,
		CreatedBy:     model.CreatedBy,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct agent entity: %w", err)
	}
	return entity, nil
}

func (m *AgentMapperImpl) ToModel(entity *agent.Agent) (*models.AgentModel, error) {
	if entity == nil {
		return nil, nil
	}

	keywords := entity.Keywords()
	if keywords == nil {
		keywords = []string{}
	}
	keywordsJSON, err := toJSONColumn("keywords", keywords)
	if err != nil {
		return nil, err
	}
	triggersJSON, err := toJSONColumn("action_triggers", entity.ActionTriggers())
	if err != nil {
		return nil, err
	}
	personalityJSON, err := toJSONColumn("personality", entity.Personality())
	if err != nil {
		return nil, err
	}

	metrics := entity.Metrics()
	return &models.AgentModel{
		ID:                 entity.ID(),
		SID:                entity.SID(),
		TenantCNPJ:         entity.TenantCNPJ(),
		Name:               entity.Name(),
		Description:        entity.Description(),
		Instructions:       entity.Instructions(),
		Keywords:           keywordsJSON,
		ActionTriggers:     triggersJSON,
		Personality:        personalityJSON,
		Model:              entity.Model(),
		Temperature:        entity.Temperature(),
		MaxTokens:          entity.MaxTokens(),
		Language:           entity.Language().String(),
		PostAnalysisAction: entity.PostAnalysisAction().String(),
		Status:             entity.Status().String(),
		TotalExecutions:    entity.TotalExecutions(),
		DocumentsAnalyzed:  metrics.DocumentsAnalyzed,
		FilingsGenerated:   metrics.FilingsGenerated,
		SuccessRate:        metrics.SuccessRate,
		AverageTimeSeconds: metrics.AverageTimeSeconds,
		LastExecution:      entity.LastExecution(),
		CreatedBy:          entity.CreatedBy(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}, nil
}

func (m *AgentMapperImpl) ToEntities(models []*models.AgentModel) ([]*agent.Agent, error) {
	return mapper.MapSliceWithError(models, m.ToEntity)
}
