package valueobjects

import "fmt"

// Sector is the department an organized document is routed to.
type Sector string

const (
	SectorLegal          Sector = "juridico"
	SectorAdministrative Sector = "administrativo"
	SectorFinancial      Sector = "financeiro"
	SectorHumanResources Sector = "recursos_humanos"
	SectorControlDesk    Sector = "controldesk"
	SectorMIS            Sector = "mis"
	SectorNegotiation    Sector = "negociacao"
)

var sectors = []Sector{
	SectorLegal,
	SectorAdministrative,
	SectorFinancial,
	SectorHumanResources,
	SectorControlDesk,
	SectorMIS,
	SectorNegotiation,
}

func Sectors() []Sector {
	return append([]Sector(nil), sectors...)
}

func (s Sector) String() string {
	return string(s)
}

func (s Sector) IsValid() bool {
	for _, v := range sectors {
		if v == s {
			return true
		}
	}
	return false
}

func (s Sector) Label() string {
	switch s {
	case SectorLegal:
		return "Jurídico"
	case SectorAdministrative:
		return "Administrativo"
	case SectorFinancial:
		return "Financeiro"
	case SectorHumanResources:
		return "Recursos Humanos"
	case SectorControlDesk:
		return "Controldesk"
	case SectorMIS:
		return "M.I.S (Gestão da Informação)"
	case SectorNegotiation:
		return "Negociação"
	default:
		return "Setor não identificado"
	}
}

// ParseSector returns the sector for raw or SectorLegal when raw is unknown.
func ParseSector(raw string) Sector {
	if s := Sector(raw); s.IsValid() {
		return s
	}
	return SectorLegal
}

func NewSector(s string) (Sector, error) {
	sector := Sector(s)
	if !sector.IsValid() {
		return "", fmt.Errorf("invalid sector: %s", s)
	}
	return sector, nil
}
