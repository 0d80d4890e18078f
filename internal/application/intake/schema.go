package intake

import (
	filingvo "github.com/lexdoc-ai/lexdoc/internal/domain/filing/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
)

const (
	analysisTextLimit = 4000
)

// extractedText is the extractor output for ExtractionSchema.
type extractedText struct {
	Text  string `json:"texto_completo"`
	Pages int    `json:"numero_paginas"`
}

// ExtractionSchema asks for the full text of the file.
func ExtractionSchema() *services.Schema {
	return services.ObjectSchema(map[string]*services.Schema{
		"texto_completo": services.Field(services.SchemaString, "Texto completo do documento"),
	}, "texto_completo")
}

// AnalysisSchema constrains the strategic analysis to the fields stored in
// contexto_extraido. The fields that decide filing generation are required.
func AnalysisSchema() *services.Schema {
	str := func(desc string) *services.Schema { return services.Field(services.SchemaString, desc) }
	suggestion := str("Peça sugerida ou nenhuma")
	suggestion.Enum = filingvo.SuggestionValues()
	return services.ObjectSchema(map[string]*services.Schema{
		"tipo_documento":          str("Tipo do documento"),
		"classificacao":           str("Classificação do documento"),
		"contexto_juridico":       str("Contexto jurídico resumido"),
		"lado_processo":           str("Lado do escritório no processo"),
		"documentacao_suficiente": services.Field(services.SchemaBoolean, "Se a documentação é suficiente para agir"),
		"documentos_faltantes":    services.ArrayOf(str("Documento"), "Documentos que faltam"),
		"acao_recomendada":        str("Ação processual recomendada"),
		"tipo_peca_sugerida":      suggestion,
		"observacoes":             str("Observações"),
		"nivel_confianca":         str("Nível de confiança da análise"),
		"autor":                   str("Autor"),
		"reu":                     str("Réu"),
		"numero_processo":         str("Número do processo"),
		"valor_causa":             services.Field(services.SchemaNumber, "Valor da causa"),
		"prazo_resposta_dias":     services.Field(services.SchemaInteger, "Prazo de resposta em dias"),
		"fundamentacao_legal":     str("Fundamentação legal"),
	}, "tipo_documento", "documentacao_suficiente", "acao_recomendada", "tipo_peca_sugerida")
}
