package intake

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/agent"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/shared/config"
)

const testTenant = "12345678000190"

var errNoAgent = errors.New("agent not found")

func testSession() *session.Context {
	return &session.Context{
		UserID:     1,
		UserSID:    "usr_test",
		Email:      "ana@escritorio.com.br",
		Name:       "Ana Souza",
		TenantCNPJ: testTenant,
		Cargo:      "advogado_senior",
	}
}

func testFile() UploadedFile {
	data := []byte("%PDF-1.4 citacao")
	return UploadedFile{
		FileName:    "citacao.pdf",
		ContentType: "application/pdf",
		Size:        int64(len(data)),
		Data:        data,
	}
}

func newTestAgent(t *testing.T) *agent.Agent {
	t.Helper()
	temp := 0.2
	a, err := agent.NewAgent(agent.AgentParams{
		TenantCNPJ:   testTenant,
		Name:         "Contencioso Cível",
		Instructions: "Você é um advogado cível experiente.",
		Model:        "gpt-4o",
		Temperature:  &temp,
		MaxTokens:    3000,
		CreatedBy:    "ana@escritorio.com.br",
	})
	require.NoError(t, err)
	return a
}

// fullAnalysis is a model answer that fills every analysis field and allows
// generation.
func fullAnalysis() map[string]any {
	return map[string]any{
		"tipo_documento":          "citacao",
		"classificacao":           "Citação em ação de cobrança",
		"contexto_juridico":       "Ação de cobrança de honorários",
		"lado_processo":           "reu",
		"documentacao_suficiente": true,
		"documentos_faltantes":    []string{},
		"acao_recomendada":        "Apresentar contestação",
		"tipo_peca_sugerida":      "contestacao",
		"observacoes":             "Prazo em curso",
		"nivel_confianca":         "alto",
		"autor":                   "Empresa X Ltda",
		"reu":                     "João da Silva",
		"numero_processo":         "0001234-56.2024.8.26.0100",
		"valor_causa":             15000.5,
		"prazo_resposta_dias":     15,
		"fundamentacao_legal":     "Art. 335 do CPC",
	}
}

// llmAnswering returns analysis JSON for schema calls and filing text
// otherwise.
func llmAnswering(t *testing.T, analysis map[string]any) *mockLLM {
	t.Helper()
	raw, err := json.Marshal(analysis)
	require.NoError(t, err)
	return &mockLLM{
		InvokeFunc: func(ctx context.Context, req services.LLMRequest) (*services.LLMResponse, error) {
			if req.Schema != nil {
				return &services.LLMResponse{Content: string(raw)}, nil
			}
			return &services.LLMResponse{Content: "# CONTESTAÇÃO\n\nTexto da peça."}, nil
		},
	}
}

type intakeHarness struct {
	storage   *mockStorage
	extractor *mockExtractor
	llm       *mockLLM
	docs      *mockDocumentRepository
	filings   *mockFilingRepository
	cases     *mockCaseRepository
	agents    *mockAgentRepository
	tx        *mockTransactor
	auditor   *mockAuditor
	logger    *mockLogger
	strategy  MetricsStrategy
}

func newIntakeHarness(t *testing.T, analysis map[string]any, agents ...*agent.Agent) *intakeHarness {
	return &intakeHarness{
		storage:   &mockStorage{},
		extractor: &mockExtractor{},
		llm:       llmAnswering(t, analysis),
		docs:      newMockDocumentRepository(),
		filings:   newMockFilingRepository(),
		cases:     &mockCaseRepository{},
		agents:    newMockAgentRepository(agents...),
		tx:        &mockTransactor{},
		auditor:   &mockAuditor{},
		logger:    &mockLogger{},
		strategy:  MetricsAtomic,
	}
}

func (h *intakeHarness) metrics() *AgentMetrics {
	return NewAgentMetrics(h.agents, h.strategy, h.logger)
}

func (h *intakeHarness) analyzeUseCase() *AnalyzeDocumentUseCase {
	return NewAnalyzeDocumentUseCase(
		h.storage, h.extractor, h.llm, &mockPrompts{},
		h.docs, h.cases, h.agents,
		h.metrics(),
		NewUploadPolicy(config.WorkflowConfig{}),
		h.auditor, h.logger,
	)
}

func (h *intakeHarness) generateUseCase() *GenerateFilingUseCase {
	return NewGenerateFilingUseCase(
		h.docs, h.filings, h.agents, h.llm, &mockPrompts{}, mockRenderer{},
		h.tx, h.metrics(), h.auditor, h.logger,
	)
}

func strPtr(s string) *string { return &s }
