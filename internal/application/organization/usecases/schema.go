package usecases

import (
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
)

// PageExtractionSchema asks for the text and the page count.
func PageExtractionSchema() *services.Schema {
	return services.ObjectSchema(map[string]*services.Schema{
		"texto_completo": services.Field(services.SchemaString, "Texto completo do documento"),
		"numero_paginas": services.Field(services.SchemaInteger, "Número de páginas"),
	}, "texto_completo")
}

func ClassificationSchema() *services.Schema {
	str := func(desc string) *services.Schema { return services.Field(services.SchemaString, desc) }
	return services.ObjectSchema(map[string]*services.Schema{
		"tipo_documento":       str("Tipo do documento"),
		"setor_destino":        str("Departamento de destino"),
		"paginas_reordenadas":  services.Field(services.SchemaBoolean, "Se as páginas precisaram ser reordenadas"),
		"documentos_separados": services.ArrayOf(str("Documento"), "Documentos contidos no arquivo"),
		"observacoes":          str("Observações"),
		"partes_identificadas": services.ObjectSchema(map[string]*services.Schema{
			"autor":           str("Autor"),
			"reu":             str("Réu"),
			"numero_processo": str("Número do processo"),
		}),
		"palavras_chave":         services.ArrayOf(str("Palavra-chave"), "Palavras-chave"),
		"nome_sugerido":          str("Nome de arquivo sugerido"),
		"caminho_pasta_sugerido": str("Caminho de pasta sugerido"),
	}, "tipo_documento", "setor_destino")
}
