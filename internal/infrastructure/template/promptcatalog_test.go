package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

func TestPromptCatalog_AnalysisFallsBackToDefaultPersona(t *testing.T) {
	c, err := NewPromptCatalog("", logger.NewLogger())
	require.NoError(t, err)

	out, err := c.AnalysisPrompt(services.AnalysisPrompt{Format: "pdf", Text: "INTIMAÇÃO"})
	require.NoError(t, err)

	assert.Contains(t, out, "Agente Jurídico de Estratégia Processual")
	assert.Contains(t, out, "(Formato: PDF)")
	assert.Contains(t, out, "INTIMAÇÃO")
}

func TestPromptCatalog_AnalysisUsesAgentInstructions(t *testing.T) {
	c, err := NewPromptCatalog("", logger.NewLogger())
	require.NoError(t, err)

	out, err := c.AnalysisPrompt(services.AnalysisPrompt{Persona: "Você é especialista em bancário.", Format: "docx"})
	require.NoError(t, err)

	assert.Contains(t, out, "Você é especialista em bancário.")
	assert.NotContains(t, out, "Estratégia Processual especializado")
}

func TestPromptCatalog_GenerationPlaceholders(t *testing.T) {
	c, err := NewPromptCatalog("", logger.NewLogger())
	require.NoError(t, err)

	out, err := c.GenerationPrompt(services.GenerationPrompt{
		FilingType:        "contestacao",
		RecommendedAction: "Contestar cobrança",
		Plaintiff:         "Banco X",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Você é advogado especializado.")
	assert.Contains(t, out, "gere uma contestacao profissional")
	assert.Contains(t, out, "Autor: Banco X")
	assert.Contains(t, out, "Réu: A definir")
	assert.Contains(t, out, "Processo: Não informado")
	assert.Contains(t, out, "DOS PEDIDOS")
	assert.Contains(t, out, "Tom: formal_juridico")
}

func TestPromptCatalog_OverrideReplacesSingleEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("organization: \"Classifique: {{.Text}}\"\n"), 0o600))

	c, err := NewPromptCatalog(path, logger.NewLogger())
	require.NoError(t, err)

	out, err := c.OrganizationPrompt("recibo")
	require.NoError(t, err)
	assert.Equal(t, "Classifique: recibo", out)

	test, err := c.AgentTestPrompt("Instruções", "texto")
	require.NoError(t, err)
	assert.Contains(t, test, "ANÁLISE DE DOCUMENTO")
}

func TestPromptCatalog_MissingOverrideIsIgnored(t *testing.T) {
	_, err := NewPromptCatalog(filepath.Join(t.TempDir(), "absent.yaml"), logger.NewLogger())
	require.NoError(t, err)
}

func TestPromptCatalog_InvalidOverrideFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("analysis: \"{{.Persona\"\n"), 0o600))

	_, err := NewPromptCatalog(path, logger.NewLogger())
	assert.Error(t, err)
}
