package agent

import (
	"strings"

	"github.com/lexdoc-ai/lexdoc/internal/application/agent/usecases"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/agent/valueobjects"
)

type CreateAgentRequest struct {
	Name               string          `json:"nome" binding:"required,min=2,max=120"`
	Description        string          `json:"descricao" binding:"max=1000"`
	Instructions       string          `json:"instrucoes_sistema" binding:"required,min=10"`
	Keywords           []string        `json:"palavras_chave" binding:"omitempty,max=50,dive,min=1,max=60"`
	Personality        *vo.Personality `json:"personalidade"`
	Model              string          `json:"modelo_ia" binding:"max=60"`
	Temperature        *float64        `json:"temperatura" binding:"omitempty,gte=0,lte=2"`
	MaxTokens          int             `json:"max_tokens" binding:"omitempty,gte=1,lte=32000"`
	Language           string          `json:"idioma" binding:"omitempty,oneof=portugues ingles espanhol"`
	PostAnalysisAction string          `json:"acao_pos_analise" binding:"omitempty,oneof=salvar_rascunho enviar_revisao notificar_usuario gerar_documento"`
	Status             string          `json:"status" binding:"omitempty,oneof=ativo inativo em_treinamento"`
}

func (r *CreateAgentRequest) ToCommand(sc *session.Context) usecases.CreateAgentCommand {
	return usecases.CreateAgentCommand{
		Session:            sc,
		Name:               strings.TrimSpace(r.Name),
		Description:        r.Description,
		Instructions:       r.Instructions,
		Keywords:           r.Keywords,
		Personality:        r.Personality,
		Model:              r.Model,
		Temperature:        r.Temperature,
		MaxTokens:          r.MaxTokens,
		Language:           r.Language,
		PostAnalysisAction: r.PostAnalysisAction,
		Status:             r.Status,
	}
}

// UpdateAgentRequest is a partial update. A present palavras_chave list
// replaces the stored one.
type UpdateAgentRequest struct {
	Name               *string         `json:"nome" binding:"omitempty,min=2,max=120"`
	Description        *string         `json:"descricao" binding:"omitempty,max=1000"`
	Instructions       *string         `json:"instrucoes_sistema" binding:"omitempty,min=10"`
	Keywords           []string        `json:"palavras_chave" binding:"omitempty,max=50,dive,min=1,max=60"`
	Personality        *vo.Personality `json:"personalidade"`
	Model              *string         `json:"modelo_ia" binding:"omitempty,max=60"`
	Temperature        *float64        `json:"temperatura" binding:"omitempty,gte=0,lte=2"`
	MaxTokens          *int            `json:"max_tokens" binding:"omitempty,gte=1,lte=32000"`
	Language           *string         `json:"idioma" binding:"omitempty,oneof=portugues ingles espanhol"`
	PostAnalysisAction *string         `json:"acao_pos_analise" binding:"omitempty,oneof=salvar_rascunho enviar_revisao notificar_usuario gerar_documento"`
	Status             *string         `json:"status" binding:"omitempty,oneof=ativo inativo em_treinamento"`
}

func (r *UpdateAgentRequest) ToCommand(sc *session.Context, agentSID string) usecases.UpdateAgentCommand {
	return usecases.UpdateAgentCommand{
		Session:            sc,
		AgentSID:           agentSID,
		Name:               r.Name,
		Description:        r.Description,
		Instructions:       r.Instructions,
		Keywords:           r.Keywords,
		Personality:        r.Personality,
		Model:              r.Model,
		Temperature:        r.Temperature,
		MaxTokens:          r.MaxTokens,
		Language:           r.Language,
		PostAnalysisAction: r.PostAnalysisAction,
		Status:             r.Status,
	}
}
