package valueobjects

import (
	"fmt"

	"github.com/lexdoc-ai/lexdoc/internal/shared/textutil"
)

// DocumentType classifies uploaded and organized documents.
type DocumentType string

const (
	DocumentTypePowerOfAttorney DocumentType = "procuracao"
	DocumentTypeContract        DocumentType = "contrato"
	DocumentTypeDefense         DocumentType = "defesa"
	DocumentTypeInitialPetition DocumentType = "peticao_inicial"
	DocumentTypePaymentProof    DocumentType = "comprovante_pagamento"
	DocumentTypeReceipt         DocumentType = "recibo"
	DocumentTypeAdhesionTerm    DocumentType = "termo_adesao"
	DocumentTypeSummons         DocumentType = "intimacao"
	DocumentTypeSentence        DocumentType = "sentenca"
	DocumentTypeOrder           DocumentType = "despacho"
	DocumentTypeAppeal          DocumentType = "recurso"
	DocumentTypeOther           DocumentType = "outros"
)

var documentTypes = []DocumentType{
	DocumentTypePowerOfAttorney,
	DocumentTypeContract,
	DocumentTypeDefense,
	DocumentTypeInitialPetition,
	DocumentTypePaymentProof,
	DocumentTypeReceipt,
	DocumentTypeAdhesionTerm,
	DocumentTypeSummons,
	DocumentTypeSentence,
	DocumentTypeOrder,
	DocumentTypeAppeal,
	DocumentTypeOther,
}

// documentTypeAliases maps free-text classifications returned by the model onto the taxonomy.
var documentTypeAliases = map[string]DocumentType{
	"contestacao":              DocumentTypeDefense,
	"peticao":                  DocumentTypeInitialPetition,
	"comprovante":              DocumentTypePaymentProof,
	"ccb":                      DocumentTypeContract,
	"cedula_de_credito":        DocumentTypeContract,
	"termo_de_adesao":          DocumentTypeAdhesionTerm,
	"notificacao":              DocumentTypeSummons,
	"citacao":                  DocumentTypeSummons,
	"apelacao":                 DocumentTypeAppeal,
	"comprovante_de_pagamento": DocumentTypePaymentProof,
}

func DocumentTypes() []DocumentType {
	return append([]DocumentType(nil), documentTypes...)
}

func (t DocumentType) String() string {
	return string(t)
}

func (t DocumentType) IsValid() bool {
	for _, v := range documentTypes {
		if v == t {
			return true
		}
	}
	return false
}

func (t DocumentType) Label() string {
	switch t {
	case DocumentTypePowerOfAttorney:
		return "Procuração"
	case DocumentTypeContract:
		return "Contrato"
	case DocumentTypeDefense:
		return "Defesa"
	case DocumentTypeInitialPetition:
		return "Petição Inicial"
	case DocumentTypePaymentProof:
		return "Comprovante de Pagamento"
	case DocumentTypeReceipt:
		return "Recibo"
	case DocumentTypeAdhesionTerm:
		return "Termo de Adesão"
	case DocumentTypeSummons:
		return "Intimação"
	case DocumentTypeSentence:
		return "Sentença"
	case DocumentTypeOrder:
		return "Despacho"
	case DocumentTypeAppeal:
		return "Recurso"
	case DocumentTypeOther:
		return "Outros"
	default:
		return "Tipo não identificado"
	}
}

func NewDocumentType(s string) (DocumentType, error) {
	t := DocumentType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid document type: %s", s)
	}
	return t, nil
}

// ParseDocumentType maps a free-text classification such as "Petição Inicial"
// onto the taxonomy. Anything unrecognised becomes DocumentTypeOther.
func ParseDocumentType(raw string) DocumentType {
	key := textutil.Slug(raw, "_")
	if key == "" {
		return DocumentTypeOther
	}
	if t := DocumentType(key); t.IsValid() {
		return t
	}
	if t, ok := documentTypeAliases[key]; ok {
		return t
	}
	for alias, t := range documentTypeAliases {
		if len(key) > len(alias) && key[:len(alias)+1] == alias+"_" {
			return t
		}
	}
	for _, t := range documentTypes {
		if len(key) > len(t) && key[:len(t)+1] == string(t)+"_" {
			return t
		}
	}
	return DocumentTypeOther
}
