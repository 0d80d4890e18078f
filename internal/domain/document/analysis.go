package document

import (
	filingvo "github.com/lexdoc-ai/lexdoc/internal/domain/filing/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/shared/textutil"
)

const (
	// DefaultResponseDays applies when the analysis gives no usable deadline.
	DefaultResponseDays = 15

	// ExtractionFallbackText replaces the document text when extraction fails.
	ExtractionFallbackText = "Não foi possível extrair texto do documento."

	// DegradedExtractionNote prefixes the observations of an analysis that
	// ran on the fallback text.
	DegradedExtractionNote = "[Análise degradada: não foi possível extrair o texto do documento; a análise considerou apenas os metadados do arquivo.]"

	DefaultAgentName = "Agente Padrão"
	DefaultModelName = "gpt-4-turbo"
)

// Analysis is the structured strategic analysis returned by the model.
type Analysis struct {
	DocumentType            string   `json:"tipo_documento"`
	Classification          string   `json:"classificacao"`
	LegalContext            string   `json:"contexto_juridico"`
	CaseSide                string   `json:"lado_processo"`
	DocumentationSufficient bool     `json:"documentacao_suficiente"`
	MissingDocuments        []string `json:"documentos_faltantes"`
	RecommendedAction       string   `json:"acao_recomendada"`
	SuggestedFiling         string   `json:"tipo_peca_sugerida"`
	Observations            string   `json:"observacoes"`
	ConfidenceLevel         string   `json:"nivel_confianca"`
	Plaintiff               string   `json:"autor"`
	Defendant               string   `json:"reu"`
	ProcessNumber           string   `json:"numero_processo"`
	ClaimValue              *float64 `json:"valor_causa"`
	ResponseDays            *int     `json:"prazo_resposta_dias"`
	LegalGrounds            string   `json:"fundamentacao_legal"`
}

// SuggestedFilingType normalizes the suggestion, folding accents and
// spacing so "Petição Inicial" reads as peticao_inicial. ok is false for
// "nenhuma", empty and unknown values.
func (a Analysis) SuggestedFilingType() (filingvo.FilingType, bool) {
	s := textutil.Slug(a.SuggestedFiling, "_")
	if s == "" || s == filingvo.SuggestionNone {
		return "", false
	}
	t := filingvo.FilingType(s)
	return t, t.IsValid()
}

// CanGenerateFiling is true only when a filing is suggested and the
// documentation was judged sufficient.
func (a Analysis) CanGenerateFiling() bool {
	_, ok := a.SuggestedFilingType()
	return ok && a.DocumentationSufficient
}

// ResponseDaysOrDefault returns the deadline in days, defaulting to 15 when
// absent or negative.
func (a Analysis) ResponseDaysOrDefault() int {
	if a.ResponseDays == nil || *a.ResponseDays < 0 {
		return DefaultResponseDays
	}
	return *a.ResponseDays
}

// ExtractedContext is what gets stored as contexto_extraido: every analysis
// field plus traceability of the agent and model used.
type ExtractedContext struct {
	Analysis
	AnalyzedBy       string `json:"analisado_por_agente"`
	ModelUsed        string `json:"modelo_usado"`
	ResponseDeadline string `json:"prazo_resposta,omitempty"`
}
