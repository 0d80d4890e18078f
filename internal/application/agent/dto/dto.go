package dto

import (
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/domain/agent"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/agent/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/shared/mapper"
)

type AgentDTO struct {
	ID                 string            `json:"id"`
	Name               string            `json:"nome"`
	Description        string            `json:"descricao"`
	Instructions       string            `json:"instrucoes_sistema"`
	Keywords           []string          `json:"palavras_chave"`
	ActionTriggers     map[string]string `json:"gatilhos_acao"`
	Personality        vo.Personality    `json:"personalidade"`
	Model              string            `json:"modelo_ia"`
	Temperature        float64           `json:"temperatura"`
	MaxTokens          int               `json:"max_tokens"`
	Language           string            `json:"idioma"`
	PostAnalysisAction string            `json:"acao_pos_analise"`
	Status             string            `json:"status"`
	StatusLabel        string            `json:"status_label"`
	TotalExecutions    int               `json:"total_execucoes"`
	Metrics            vo.Metrics        `json:"metricas"`
	LastExecution      *time.Time        `json:"ultima_execucao"`
	CreatedBy          string            `json:"created_by"`
	CreatedAt          time.Time         `json:"created_date"`
	UpdatedAt          time.Time         `json:"updated_date"`
}

// TestRunDTO is the outcome of a dry run of an agent on a sample file.
type TestRunDTO struct {
	ExtractedText string  `json:"texto_extraido"`
	Response      string  `json:"resposta_ia"`
	Confidence    float64 `json:"confianca"`
	Model         string  `json:"modelo_usado"`
}

func ToAgentDTO(a *agent.Agent) *AgentDTO {
	if a == nil {
		return nil
	}
	return &AgentDTO{
		ID:                 a.SID(),
		Name:               a.Name(),
		Description:        a.Description(),
		Instructions:       a.Instructions(),
		Keywords:           a.Keywords(),
		ActionTriggers:     a.ActionTriggers(),
		Personality:        a.Personality(),
		Model:              a.Model(),
		Temperature:        a.Temperature(),
		MaxTokens:          a.MaxTokens(),
		Language:           a.Language().String(),
		PostAnalysisAction: a.PostAnalysisAction().String(),
		Status:             a.Status().String(),
		StatusLabel:        a.Status().Label(),
		TotalExecutions:    a.TotalExecutions(),
		Metrics:            a.Metrics(),
		LastExecution:      a.LastExecution(),
		CreatedBy:          a.CreatedBy(),
		CreatedAt:          a.CreatedAt(),
		UpdatedAt:          a.UpdatedAt(),
	}
}

func ToAgentDTOs(as []*agent.Agent) []*AgentDTO {
	return mapper.MapSlice(as, ToAgentDTO)
}
