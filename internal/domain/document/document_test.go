package document

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/lexdoc-ai/lexdoc/internal/domain/document/valueobjects"
	filingvo "github.com/lexdoc-ai/lexdoc/internal/domain/filing/valueobjects"
)

func newTestDocument(t *testing.T) *Document {
	t.Helper()
	d, err := NewDocument(UploadParams{
		TenantCNPJ: "12345678000190",
		FileName:   "Intimacao.PDF",
		FileURL:    "https://files.local/intimacao.pdf",
		StorageKey: "12345678000190/documents/intimacao.pdf",
		SizeBytes:  2048,
	})
	require.NoError(t, err)
	return d
}

func intPtr(v int) *int { return &v }

func sampleAnalysis() Analysis {
	value := 12000.0
	return Analysis{
		DocumentType:            "Intimação",
		Classification:          "Defesas",
		LegalContext:            "ação de cobrança",
		CaseSide:                "passivo",
		DocumentationSufficient: true,
		MissingDocuments:        []string{},
		RecommendedAction:       "Apresentar contestação",
		SuggestedFiling:         "contestacao",
		Observations:            "Prazo em curso",
		ConfidenceLevel:         "alto",
		Plaintiff:               "Banco X",
		Defendant:               "Maria",
		ProcessNumber:           "0001234-56.2026.8.26.0100",
		ClaimValue:              &value,
		ResponseDays:            intPtr(15),
		LegalGrounds:            "CPC art. 335",
	}
}

func TestNewDocument_StartsProcessing(t *testing.T) {
	d := newTestDocument(t)

	assert.Equal(t, vo.ProcessingStatusProcessing, d.Status())
	assert.Equal(t, vo.DocumentTypeOther, d.DocumentType())
	assert.Equal(t, vo.FormatPDF, d.Format())
	assert.Equal(t, 1, d.PageCount())
	assert.Regexp(t, `^doc_`, d.SID())
	assert.False(t, d.HasFiling())
}

func TestDocument_RecordAnalysis(t *testing.T) {
	d := newTestDocument(t)
	a := sampleAnalysis()

	require.NoError(t, d.RecordAnalysis("texto", a, "Agente X", "gpt-4", false))

	assert.Equal(t, vo.ProcessingStatusCompleted, d.Status())
	assert.Equal(t, vo.DocumentTypeSummons, d.DocumentType())
	assert.Equal(t, "contestacao", d.SuggestedFiling())
	require.NotNil(t, d.Context())
	assert.Equal(t, a, d.Context().Analysis)
	assert.Equal(t, "Agente X", d.Context().AnalyzedBy)

	var decoded Analysis
	require.NoError(t, json.Unmarshal([]byte(d.AnalysisRaw()), &decoded))
	assert.Equal(t, a, decoded)
}

func TestDocument_RecordAnalysis_Degraded(t *testing.T) {
	d := newTestDocument(t)
	require.NoError(t, d.RecordAnalysis(ExtractionFallbackText, sampleAnalysis(), DefaultAgentName, DefaultModelName, true))

	assert.Equal(t, ExtractionFallbackText, d.ExtractedText())
	assert.Contains(t, d.Context().Observations, DegradedExtractionNote)
	assert.Contains(t, d.Context().Observations, "Prazo em curso")
}

func TestExtractedContext_JSONIsFlat(t *testing.T) {
	ctx := ExtractedContext{Analysis: sampleAnalysis(), AnalyzedBy: DefaultAgentName, ModelUsed: DefaultModelName}
	raw, err := json.Marshal(ctx)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, key := range []string{
		"tipo_documento", "classificacao", "contexto_juridico", "lado_processo",
		"documentacao_suficiente", "documentos_faltantes", "acao_recomendada",
		"tipo_peca_sugerida", "observacoes", "nivel_confianca", "autor", "reu",
		"numero_processo", "valor_causa", "prazo_resposta_dias", "fundamentacao_legal",
		"analisado_por_agente", "modelo_usado",
	} {
		assert.Contains(t, m, key)
	}
	assert.NotContains(t, m, "prazo_resposta")
}

func TestAnalysis_CanGenerateFiling(t *testing.T) {
	tests := []struct {
		name       string
		suggestion string
		sufficient bool
		want       bool
	}{
		{"suggested and sufficient", "contestacao", true, true},
		{"suggested but insufficient", "contestacao", false, false},
		{"none", "nenhuma", true, false},
		{"none uppercase", "NENHUMA", true, false},
		{"empty", "", true, false},
		{"unknown type", "habeas_corpus", true, false},
		{"accented", "Contestação", true, true},
		{"space separated", "peticao inicial", true, true},
		{"label form", "Petição Inicial", true, true},
		{"accented none", "Nenhuma", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Analysis{SuggestedFiling: tt.suggestion, DocumentationSufficient: tt.sufficient}
			assert.Equal(t, tt.want, a.CanGenerateFiling())
		})
	}
}

func TestAnalysis_SuggestedFilingType(t *testing.T) {
	tests := []struct {
		in     string
		want   filingvo.FilingType
		wantOK bool
	}{
		{"contestacao", filingvo.FilingTypeAnswer, true},
		{"RECURSO", filingvo.FilingTypeAppeal, true},
		{"Contestação", filingvo.FilingTypeAnswer, true},
		{"peticao inicial", filingvo.FilingTypeInitialPetition, true},
		{"Petição Inicial", filingvo.FilingTypeInitialPetition, true},
		{" Manifestação ", filingvo.FilingTypeStatement, true},
		{"nenhuma", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Analysis{SuggestedFiling: tt.in}.SuggestedFilingType()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAnalysis_ResponseDaysOrDefault(t *testing.T) {
	assert.Equal(t, 15, Analysis{}.ResponseDaysOrDefault())
	assert.Equal(t, 15, Analysis{ResponseDays: intPtr(-3)}.ResponseDaysOrDefault())
	assert.Equal(t, 0, Analysis{ResponseDays: intPtr(0)}.ResponseDaysOrDefault())
	assert.Equal(t, 30, Analysis{ResponseDays: intPtr(30)}.ResponseDaysOrDefault())
}

func TestDocument_AttachFiling(t *testing.T) {
	d := newTestDocument(t)
	deadline := time.Date(2026, 10, 31, 15, 0, 0, 0, time.UTC)

	assert.Error(t, d.AttachFiling("fil_1", deadline), "not analysed yet")

	require.NoError(t, d.RecordAnalysis("t", sampleAnalysis(), "A", "m", false))
	require.NoError(t, d.AttachFiling("fil_1", deadline))
	assert.True(t, d.HasFiling())
	assert.Equal(t, "2026-10-31", d.Context().ResponseDeadline)

	assert.Error(t, d.AttachFiling("fil_2", deadline))

	d.DetachFiling()
	assert.False(t, d.HasFiling())
}
