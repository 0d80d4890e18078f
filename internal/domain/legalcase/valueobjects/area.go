package valueobjects

import "fmt"

// LegalArea is the area of law a case belongs to.
type LegalArea string

const (
	LegalAreaCivil          LegalArea = "civil"
	LegalAreaLabor          LegalArea = "trabalhista"
	LegalAreaTax            LegalArea = "tributario"
	LegalAreaCorporate      LegalArea = "empresarial"
	LegalAreaFamily         LegalArea = "familia"
	LegalAreaCriminal       LegalArea = "criminal"
	LegalAreaSocialSecurity LegalArea = "previdenciario"
	LegalAreaConsumer       LegalArea = "consumidor"
	LegalAreaAdministrative LegalArea = "administrativo"
)

var legalAreas = []LegalArea{
	LegalAreaCivil,
	LegalAreaLabor,
	LegalAreaTax,
	LegalAreaCorporate,
	LegalAreaFamily,
	LegalAreaCriminal,
	LegalAreaSocialSecurity,
	LegalAreaConsumer,
	LegalAreaAdministrative,
}

func LegalAreas() []LegalArea {
	return append([]LegalArea(nil), legalAreas...)
}

func (a LegalArea) String() string {
	return string(a)
}

func (a LegalArea) IsValid() bool {
	for _, v := range legalAreas {
		if v == a {
			return true
		}
	}
	return false
}

func (a LegalArea) Label() string {
	switch a {
	case LegalAreaCivil:
		return "Cível"
	case LegalAreaLabor:
		return "Trabalhista"
	case LegalAreaTax:
		return "Tributário"
	case LegalAreaCorporate:
		return "Empresarial"
	case LegalAreaFamily:
		return "Família"
	case LegalAreaCriminal:
		return "Criminal"
	case LegalAreaSocialSecurity:
		return "Previdenciário"
	case LegalAreaConsumer:
		return "Consumidor"
	case LegalAreaAdministrative:
		return "Administrativo"
	default:
		return "Outra área"
	}
}

func NewLegalArea(s string) (LegalArea, error) {
	a := LegalArea(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid legal area: %s", s)
	}
	return a, nil
}
