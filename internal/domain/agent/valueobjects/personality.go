package valueobjects

import "fmt"

// Tone is the register the agent writes in.
type Tone string

const (
	ToneFormalLegal          Tone = "formal_juridico"
	ToneTechnicalNeutral     Tone = "tecnico_neutro"
	ToneFriendlyProfessional Tone = "amigavel_profissional"
)

var tones = []Tone{ToneFormalLegal, ToneTechnicalNeutral, ToneFriendlyProfessional}

func Tones() []Tone {
	return append([]Tone(nil), tones...)
}

func (t Tone) String() string { return string(t) }

func (t Tone) IsValid() bool {
	switch t {
	case ToneFormalLegal, ToneTechnicalNeutral, ToneFriendlyProfessional:
		return true
	}
	return false
}

func (t Tone) Label() string {
	switch t {
	case ToneFormalLegal:
		return "Formal Jurídico"
	case ToneTechnicalNeutral:
		return "Técnico Neutro"
	case ToneFriendlyProfessional:
		return "Amigável Profissional"
	default:
		return "Tom padrão"
	}
}

type DetailLevel string

const (
	DetailLevelBasic        DetailLevel = "basico"
	DetailLevelIntermediate DetailLevel = "intermediario"
	DetailLevelAdvanced     DetailLevel = "avancado"
)

var detailLevels = []DetailLevel{DetailLevelBasic, DetailLevelIntermediate, DetailLevelAdvanced}

func DetailLevels() []DetailLevel {
	return append([]DetailLevel(nil), detailLevels...)
}

func (d DetailLevel) String() string { return string(d) }

func (d DetailLevel) IsValid() bool {
	switch d {
	case DetailLevelBasic, DetailLevelIntermediate, DetailLevelAdvanced:
		return true
	}
	return false
}

func (d DetailLevel) Label() string {
	switch d {
	case DetailLevelBasic:
		return "Básico"
	case DetailLevelIntermediate:
		return "Intermediário"
	case DetailLevelAdvanced:
		return "Avançado"
	default:
		return "Nível padrão"
	}
}

type ResponseMode string

const (
	ResponseModeStructured ResponseMode = "documento_estruturado"
	ResponseModeSummary    ResponseMode = "resumo"
	ResponseModePlainText  ResponseMode = "texto_puro"
)

var responseModes = []ResponseMode{ResponseModeStructured, ResponseModeSummary, ResponseModePlainText}

func ResponseModes() []ResponseMode {
	return append([]ResponseMode(nil), responseModes...)
}

func (m ResponseMode) String() string { return string(m) }

func (m ResponseMode) IsValid() bool {
	switch m {
	case ResponseModeStructured, ResponseModeSummary, ResponseModePlainText:
		return true
	}
	return false
}

func (m ResponseMode) Label() string {
	switch m {
	case ResponseModeStructured:
		return "Documento Estruturado"
	case ResponseModeSummary:
		return "Resumo"
	case ResponseModePlainText:
		return "Texto Puro"
	default:
		return "Modo padrão"
	}
}

// Personality bundles the tone and formatting flags of an agent.
type Personality struct {
	Tone                   Tone         `json:"tom_linguagem"`
	DetailLevel            DetailLevel  `json:"nivel_detalhe"`
	ResponseMode           ResponseMode `json:"modo_resposta"`
	IncludeSignature       bool         `json:"incluir_assinatura"`
	IncludeLegalReferences bool         `json:"incluir_referencias_legais"`
}

// DefaultPersonality matches what a freshly created agent gets.
func DefaultPersonality() Personality {
	return Personality{
		Tone:                   ToneFormalLegal,
		DetailLevel:            DetailLevelIntermediate,
		ResponseMode:           ResponseModeStructured,
		IncludeSignature:       true,
		IncludeLegalReferences: true,
	}
}

func (p Personality) Validate() error {
	if !p.Tone.IsValid() {
		return fmt.Errorf("invalid tone: %s", p.Tone)
	}
	if !p.DetailLevel.IsValid() {
		return fmt.Errorf("invalid detail level: %s", p.DetailLevel)
	}
	if !p.ResponseMode.IsValid() {
		return fmt.Errorf("invalid response mode: %s", p.ResponseMode)
	}
	return nil
}
