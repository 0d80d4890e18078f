package intake

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	agentvo "github.com/lexdoc-ai/lexdoc/internal/domain/agent/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/document"
	docvo "github.com/lexdoc-ai/lexdoc/internal/domain/document/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/domain/legalcase"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/shared/config"
	apperrors "github.com/lexdoc-ai/lexdoc/internal/shared/errors"
)

func TestAnalyzeDocument_StoresEveryAnalysisField(t *testing.T) {
	ag := newTestAgent(t)
	h := newIntakeHarness(t, fullAnalysis(), ag)

	result, err := h.analyzeUseCase().Execute(context.Background(), AnalyzeDocumentCommand{
		Session:  testSession(),
		File:     testFile(),
		AgentSID: strPtr(ag.SID()),
	})
	require.NoError(t, err)
	require.Len(t, h.docs.docs, 1)

	doc := result.Document
	assert.Equal(t, docvo.ProcessingStatusCompleted, doc.Status())
	assert.Equal(t, "Texto do documento", doc.ExtractedText())
	assert.False(t, result.Degraded)
	assert.Empty(t, result.Warnings)
	assert.True(t, result.CanGenerateFiling)

	var stored map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc.AnalysisRaw()), &stored))
	for key := range fullAnalysis() {
		assert.Contains(t, stored, key)
	}

	ctx := doc.Context()
	require.NotNil(t, ctx)
	assert.Equal(t, "Contencioso Cível", ctx.AnalyzedBy)
	assert.Equal(t, "gpt-4o", ctx.ModelUsed)
	assert.Equal(t, "Apresentar contestação", ctx.RecommendedAction)
	require.NotNil(t, ctx.ClaimValue)
	assert.InDelta(t, 15000.5, *ctx.ClaimValue, 0.001)

	assert.Equal(t, []audit.Action{audit.ActionDocumentUploaded, audit.ActionAnalysisStarted}, h.auditor.actions())
}

func TestAnalyzeDocument_NeverGeneratesFiling(t *testing.T) {
	h := newIntakeHarness(t, fullAnalysis())

	result, err := h.analyzeUseCase().Execute(context.Background(), AnalyzeDocumentCommand{
		Session: testSession(),
		File:    testFile(),
	})
	require.NoError(t, err)

	calls := h.llm.Calls()
	require.Len(t, calls, 1)
	assert.NotNil(t, calls[0].Schema)
	assert.Empty(t, h.filings.filings)
	assert.False(t, result.Document.HasFiling())
}

func TestAnalyzeDocument_AppliesAgentSettings(t *testing.T) {
	ag := newTestAgent(t)
	h := newIntakeHarness(t, fullAnalysis(), ag)

	_, err := h.analyzeUseCase().Execute(context.Background(), AnalyzeDocumentCommand{
		Session:  testSession(),
		File:     testFile(),
		AgentSID: strPtr(ag.SID()),
	})
	require.NoError(t, err)

	req := h.llm.Calls()[0]
	assert.Equal(t, "gpt-4o", req.Model)
	assert.Equal(t, 3000, req.MaxTokens)
	require.NotNil(t, req.Temperature)
	assert.InDelta(t, 0.2, *req.Temperature, 0.0001)
}

func TestAnalyzeDocument_WithoutAgentUsesDefaults(t *testing.T) {
	h := newIntakeHarness(t, fullAnalysis())

	result, err := h.analyzeUseCase().Execute(context.Background(), AnalyzeDocumentCommand{
		Session: testSession(),
		File:    testFile(),
	})
	require.NoError(t, err)

	assert.Equal(t, document.DefaultAgentName, result.Document.Context().AnalyzedBy)
	assert.Equal(t, document.DefaultModelName, result.Document.Context().ModelUsed)
	assert.Nil(t, h.llm.Calls()[0].Temperature)
}

func TestAnalyzeDocument_DegradedExtractionContinues(t *testing.T) {
	h := newIntakeHarness(t, fullAnalysis())
	h.extractor.ExtractFunc = func(ctx context.Context, in services.ExtractionInput, schema *services.Schema) (json.RawMessage, error) {
		return nil, errors.New("extractor unavailable")
	}

	result, err := h.analyzeUseCase().Execute(context.Background(), AnalyzeDocumentCommand{
		Session: testSession(),
		File:    testFile(),
	})
	require.NoError(t, err)

	doc := result.Document
	assert.True(t, result.Degraded)
	assert.Equal(t, document.ExtractionFallbackText, doc.ExtractedText())
	assert.NotEmpty(t, doc.ExtractedText())
	assert.Equal(t, docvo.ProcessingStatusCompleted, doc.Status())
	assert.Contains(t, doc.Context().Observations, document.DegradedExtractionNote)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, KindExtractionDegraded, result.Warnings[0].Kind)
	assert.Contains(t, result.Warnings[0].Message, "extractor unavailable")
}

func TestAnalyzeDocument_EmptyExtractionIsDegraded(t *testing.T) {
	h := newIntakeHarness(t, fullAnalysis())
	h.extractor.ExtractFunc = func(ctx context.Context, in services.ExtractionInput, schema *services.Schema) (json.RawMessage, error) {
		return json.RawMessage(`{"texto_completo":"   "}`), nil
	}

	result, err := h.analyzeUseCase().Execute(context.Background(), AnalyzeDocumentCommand{
		Session: testSession(),
		File:    testFile(),
	})
	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.Equal(t, document.ExtractionFallbackText, result.Document.ExtractedText())
}

func TestAnalyzeDocument_UploadFailureIsFatal(t *testing.T) {
	h := newIntakeHarness(t, fullAnalysis())
	h.storage.UploadFunc = func(ctx context.Context, in services.UploadInput) (*services.StoredFile, error) {
		return nil, errors.New("bucket unreachable")
	}

	_, err := h.analyzeUseCase().Execute(context.Background(), AnalyzeDocumentCommand{
		Session: testSession(),
		File:    testFile(),
	})
	require.Error(t, err)

	var wfErr *WorkflowError
	require.ErrorAs(t, err, &wfErr)
	assert.Equal(t, KindUploadFailed, wfErr.Kind)
	assert.True(t, wfErr.Kind.IsFatal())

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 502, appErr.Code)

	assert.Empty(t, h.docs.docs)
	assert.Empty(t, h.llm.Calls())
}

func TestAnalyzeDocument_AnalysisFailureMarksDocument(t *testing.T) {
	h := newIntakeHarness(t, fullAnalysis())
	h.llm.InvokeFunc = func(ctx context.Context, req services.LLMRequest) (*services.LLMResponse, error) {
		return nil, errors.New("model timeout")
	}

	_, err := h.analyzeUseCase().Execute(context.Background(), AnalyzeDocumentCommand{
		Session: testSession(),
		File:    testFile(),
	})
	var wfErr *WorkflowError
	require.ErrorAs(t, err, &wfErr)
	assert.Equal(t, KindAnalysisFailed, wfErr.Kind)

	require.Len(t, h.docs.docs, 1)
	for _, d := range h.docs.docs {
		assert.Equal(t, docvo.ProcessingStatusError, d.Status())
	}
}

func TestAnalyzeDocument_MalformedAnalysisFails(t *testing.T) {
	h := newIntakeHarness(t, fullAnalysis())
	h.llm.InvokeFunc = func(ctx context.Context, req services.LLMRequest) (*services.LLMResponse, error) {
		return &services.LLMResponse{Content: "não é json"}, nil
	}

	_, err := h.analyzeUseCase().Execute(context.Background(), AnalyzeDocumentCommand{
		Session: testSession(),
		File:    testFile(),
	})
	var wfErr *WorkflowError
	require.ErrorAs(t, err, &wfErr)
	assert.Equal(t, KindAnalysisFailed, wfErr.Kind)
}

func TestAnalyzeDocument_TruncatesTextSentToModel(t *testing.T) {
	h := newIntakeHarness(t, fullAnalysis())
	long := make([]rune, analysisTextLimit+500)
	for i := range long {
		long[i] = 'á'
	}
	h.extractor.ExtractFunc = func(ctx context.Context, in services.ExtractionInput, schema *services.Schema) (json.RawMessage, error) {
		raw, _ := json.Marshal(map[string]string{"texto_completo": string(long)})
		return raw, nil
	}

	var sent string
	uc := NewAnalyzeDocumentUseCase(
		h.storage, h.extractor, h.llm,
		&mockPrompts{AnalysisPromptFunc: func(p services.AnalysisPrompt) (string, error) {
			sent = p.Text
			return "prompt", nil
		}},
		h.docs, h.cases, h.agents, h.metrics(), NewUploadPolicy(config.WorkflowConfig{}), h.auditor, h.logger,
	)
	result, err := uc.Execute(context.Background(), AnalyzeDocumentCommand{Session: testSession(), File: testFile()})
	require.NoError(t, err)

	assert.Equal(t, analysisTextLimit, len([]rune(sent)))
	assert.Equal(t, string(long), result.Document.ExtractedText())
}

func TestAnalyzeDocument_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cmd *AnalyzeDocumentCommand)
		wantErr func(error) bool
	}{
		{
			name:    "no tenant",
			mutate:  func(cmd *AnalyzeDocumentCommand) { cmd.Session.TenantCNPJ = "" },
			wantErr: apperrors.IsForbiddenError,
		},
		{
			name:    "disallowed extension",
			mutate:  func(cmd *AnalyzeDocumentCommand) { cmd.File.FileName = "planilha.xlsx" },
			wantErr: apperrors.IsValidationError,
		},
		{
			name:    "unknown agent",
			mutate:  func(cmd *AnalyzeDocumentCommand) { cmd.AgentSID = strPtr("agt_missing") },
			wantErr: apperrors.IsNotFoundError,
		},
		{
			name:    "unknown case",
			mutate:  func(cmd *AnalyzeDocumentCommand) { cmd.CaseSID = strPtr("case_missing") },
			wantErr: apperrors.IsNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newIntakeHarness(t, fullAnalysis())
			cmd := AnalyzeDocumentCommand{Session: testSession(), File: testFile()}
			tt.mutate(&cmd)

			_, err := h.analyzeUseCase().Execute(context.Background(), cmd)
			require.Error(t, err)
			assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
			assert.Empty(t, h.docs.docs)
		})
	}
}

func TestAnalyzeDocument_LinksExistingCase(t *testing.T) {
	h := newIntakeHarness(t, fullAnalysis())
	c, err := legalcase.NewCase(legalcase.CaseParams{
		TenantCNPJ: testTenant,
		Title:      "Cobrança Empresa X",
		Client:     "João da Silva",
	})
	require.NoError(t, err)
	h.cases.GetBySIDFunc = func(ctx context.Context, tenantCNPJ, sid string) (*legalcase.Case, error) {
		if sid == c.SID() {
			return c, nil
		}
		return nil, nil
	}

	result, err := h.analyzeUseCase().Execute(context.Background(), AnalyzeDocumentCommand{
		Session: testSession(),
		File:    testFile(),
		CaseSID: strPtr(c.SID()),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Document.CaseSID())
	assert.Equal(t, c.SID(), *result.Document.CaseSID())
}

func TestAnalyzeDocument_MetricsFailureIsWarning(t *testing.T) {
	ag := newTestAgent(t)
	h := newIntakeHarness(t, fullAnalysis(), ag)
	h.agents.IncrementUsageFunc = func(ctx context.Context, tenantCNPJ, sid string, u agentvo.Usage, at time.Time) error {
		return errors.New("deadlock detected")
	}

	result, err := h.analyzeUseCase().Execute(context.Background(), AnalyzeDocumentCommand{
		Session:  testSession(),
		File:     testFile(),
		AgentSID: strPtr(ag.SID()),
	})
	require.NoError(t, err)
	assert.Equal(t, docvo.ProcessingStatusCompleted, result.Document.Status())
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, KindMetricsUpdateRace, result.Warnings[0].Kind)
	assert.False(t, KindMetricsUpdateRace.IsFatal())
}
