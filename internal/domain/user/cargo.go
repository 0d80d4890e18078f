package user

import "fmt"

// Cargo is the position of a user inside the office. CargoAdmin is the
// office administrator.
type Cargo string

const (
	CargoAdmin        Cargo = "admin"
	CargoSeniorLawyer Cargo = "advogado_senior"
	CargoJuniorLawyer Cargo = "advogado_junior"
	CargoIntern       Cargo = "estagiario"
)

var cargos = []Cargo{CargoAdmin, CargoSeniorLawyer, CargoJuniorLawyer, CargoIntern}

func Cargos() []Cargo {
	return append([]Cargo(nil), cargos...)
}

func (c Cargo) String() string {
	return string(c)
}

func (c Cargo) IsValid() bool {
	switch c {
	case CargoAdmin, CargoSeniorLawyer, CargoJuniorLawyer, CargoIntern:
		return true
	}
	return false
}

func (c Cargo) IsAdmin() bool {
	return c == CargoAdmin
}

func (c Cargo) Label() string {
	switch c {
	case CargoAdmin:
		return "Administrador"
	case CargoSeniorLawyer:
		return "Advogado Sênior"
	case CargoJuniorLawyer:
		return "Advogado Júnior"
	case CargoIntern:
		return "Estagiário"
	default:
		return "Colaborador"
	}
}

func NewCargo(s string) (Cargo, error) {
	c := Cargo(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid cargo: %s", s)
	}
	return c, nil
}
