package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/lexdoc-ai/lexdoc/internal/domain/agent/valueobjects"
)

func newTestAgent(t *testing.T) *Agent {
	t.Helper()
	a, err := NewAgent(AgentParams{
		TenantCNPJ:   "12345678000190",
		Name:         "Agente Contencioso",
		Instructions: "Você é especialista em defesas cíveis.",
		CreatedBy:    "ana@silva.adv.br",
	})
	require.NoError(t, err)
	return a
}

func TestNewAgent_Defaults(t *testing.T) {
	a := newTestAgent(t)

	assert.Equal(t, DefaultModel, a.Model())
	assert.InDelta(t, 0.3, a.Temperature(), 1e-9)
	assert.Equal(t, 4000, a.MaxTokens())
	assert.Equal(t, vo.LanguagePortuguese, a.Language())
	assert.Equal(t, vo.PostAnalysisSaveDraft, a.PostAnalysisAction())
	assert.Equal(t, vo.AgentStatusActive, a.Status())
	assert.Equal(t, vo.DefaultPersonality(), a.Personality())
	assert.Equal(t, "gerar_contestacao", a.ActionTriggers()["intimacao"])
	assert.Zero(t, a.TotalExecutions())
	assert.Equal(t, vo.Metrics{}, a.Metrics())
	assert.Regexp(t, `^agt_`, a.SID())
}

func TestNewAgent_Validation(t *testing.T) {
	hot := 3.5
	tests := []struct {
		name string
		p    AgentParams
	}{
		{"missing name", AgentParams{TenantCNPJ: "1", Instructions: "x"}},
		{"missing instructions", AgentParams{TenantCNPJ: "1", Name: "x"}},
		{"missing tenant", AgentParams{Name: "x", Instructions: "y"}},
		{"temperature", AgentParams{TenantCNPJ: "1", Name: "x", Instructions: "y", Temperature: &hot}},
		{"tokens", AgentParams{TenantCNPJ: "1", Name: "x", Instructions: "y", MaxTokens: -1}},
		{"language", AgentParams{TenantCNPJ: "1", Name: "x", Instructions: "y", Language: "klingon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAgent(tt.p)
			assert.Error(t, err)
		})
	}
}

func TestAgent_ApplyIsAtomic(t *testing.T) {
	a := newTestAgent(t)

	name := "Agente Recursal"
	bad := -0.1
	err := a.Apply(AgentUpdate{Name: &name, Temperature: &bad})
	assert.Error(t, err)
	assert.Equal(t, "Agente Contencioso", a.Name(), "failed update leaves the agent untouched")

	require.NoError(t, a.Apply(AgentUpdate{Name: &name}))
	assert.Equal(t, name, a.Name())
}

func TestAgent_ToggleStatus(t *testing.T) {
	a := newTestAgent(t)
	a.ToggleStatus()
	assert.Equal(t, vo.AgentStatusInactive, a.Status())
	a.ToggleStatus()
	assert.Equal(t, vo.AgentStatusActive, a.Status())

	training := vo.AgentStatusTraining
	require.NoError(t, a.Apply(AgentUpdate{Status: &training}))
	a.ToggleStatus()
	assert.Equal(t, vo.AgentStatusActive, a.Status())
}

func TestAgent_RecordUsage(t *testing.T) {
	a := newTestAgent(t)
	at := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	a.RecordUsage(vo.AnalysisUsage(), at)
	a.RecordUsage(vo.GenerationUsage(), at)

	assert.Equal(t, 2, a.TotalExecutions())
	assert.Equal(t, 1, a.Metrics().DocumentsAnalyzed)
	assert.Equal(t, 1, a.Metrics().FilingsGenerated)
	assert.Equal(t, at, *a.LastExecution())
}
