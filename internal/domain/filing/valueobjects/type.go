package valueobjects

import (
	"fmt"
	"strings"
)

// FilingType is the procedural kind of a generated filing.
type FilingType string

const (
	FilingTypeAnswer                 FilingType = "contestacao"
	FilingTypeDefense                FilingType = "defesa"
	FilingTypeInitialPetition        FilingType = "peticao_inicial"
	FilingTypeIntermediatePetition   FilingType = "peticao_intermediaria"
	FilingTypeAppeal                 FilingType = "recurso"
	FilingTypeStatement              FilingType = "manifestacao"
	FilingTypeJudgmentEnforcement    FilingType = "cumprimento_sentenca"
	FilingTypeInterlocutoryAppeal    FilingType = "agravo"
	FilingTypeMotionForClarification FilingType = "embargos"
	FilingTypeClosingArguments       FilingType = "alegacoes_finais"
	FilingTypeBriefs                 FilingType = "memoriais"
)

// SuggestionNone is what the analysis returns when no filing is recommended.
const SuggestionNone = "nenhuma"

var filingTypes = []FilingType{
	FilingTypeAnswer,
	FilingTypeDefense,
	FilingTypeInitialPetition,
	FilingTypeIntermediatePetition,
	FilingTypeAppeal,
	FilingTypeStatement,
	FilingTypeJudgmentEnforcement,
	FilingTypeInterlocutoryAppeal,
	FilingTypeMotionForClarification,
	FilingTypeClosingArguments,
	FilingTypeBriefs,
}

// suggestedTypes are the filings the strategic analysis may recommend.
var suggestedTypes = []FilingType{
	FilingTypeAnswer,
	FilingTypeDefense,
	FilingTypeInitialPetition,
	FilingTypeAppeal,
	FilingTypeStatement,
}

// SuggestionValues lists the accepted values of tipo_peca_sugerida,
// SuggestionNone included.
func SuggestionValues() []string {
	out := make([]string, 0, len(suggestedTypes)+1)
	for _, t := range suggestedTypes {
		out = append(out, string(t))
	}
	return append(out, SuggestionNone)
}

func FilingTypes() []FilingType {
	return append([]FilingType(nil), filingTypes...)
}

func (t FilingType) String() string {
	return string(t)
}

func (t FilingType) IsValid() bool {
	for _, v := range filingTypes {
		if v == t {
			return true
		}
	}
	return false
}

func (t FilingType) Label() string {
	switch t {
	case FilingTypeAnswer:
		return "Contestação"
	case FilingTypeDefense:
		return "Defesa"
	case FilingTypeInitialPetition:
		return "Petição Inicial"
	case FilingTypeIntermediatePetition:
		return "Petição Intermediária"
	case FilingTypeAppeal:
		return "Recurso"
	case FilingTypeStatement:
		return "Manifestação"
	case FilingTypeJudgmentEnforcement:
		return "Cumprimento de Sentença"
	case FilingTypeInterlocutoryAppeal:
		return "Agravo"
	case FilingTypeMotionForClarification:
		return "Embargos"
	case FilingTypeClosingArguments:
		return "Alegações Finais"
	case FilingTypeBriefs:
		return "Memoriais"
	default:
		return "Peça processual"
	}
}

// Heading is the upper-case form used in generated titles, e.g. "CONTESTACAO".
func (t FilingType) Heading() string {
	return strings.ToUpper(string(t))
}

func NewFilingType(s string) (FilingType, error) {
	t := FilingType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid filing type: %s", s)
	}
	return t, nil
}
