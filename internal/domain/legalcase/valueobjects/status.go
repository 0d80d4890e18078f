package valueobjects

import "fmt"

type CaseStatus string

const (
	CaseStatusInAnalysis       CaseStatus = "em_analise"
	CaseStatusInProgress       CaseStatus = "em_andamento"
	CaseStatusAwaitingResponse CaseStatus = "aguardando_resposta"
	CaseStatusConcluded        CaseStatus = "concluido"
	CaseStatusArchived         CaseStatus = "arquivado"
)

var caseStatuses = []CaseStatus{
	CaseStatusInAnalysis,
	CaseStatusInProgress,
	CaseStatusAwaitingResponse,
	CaseStatusConcluded,
	CaseStatusArchived,
}

func CaseStatuses() []CaseStatus {
	return append([]CaseStatus(nil), caseStatuses...)
}

func (s CaseStatus) String() string {
	return string(s)
}

func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusInAnalysis, CaseStatusInProgress, CaseStatusAwaitingResponse,
		CaseStatusConcluded, CaseStatusArchived:
		return true
	}
	return false
}

// IsOpen reports whether the case still has pending work.
func (s CaseStatus) IsOpen() bool {
	return s != CaseStatusConcluded && s != CaseStatusArchived
}

func (s CaseStatus) Label() string {
	switch s {
	case CaseStatusInAnalysis:
		return "Em Análise"
	case CaseStatusInProgress:
		return "Em Andamento"
	case CaseStatusAwaitingResponse:
		return "Aguardando Resposta"
	case CaseStatusConcluded:
		return "Concluído"
	case CaseStatusArchived:
		return "Arquivado"
	default:
		return "Status desconhecido"
	}
}

func NewCaseStatus(s string) (CaseStatus, error) {
	status := CaseStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid case status: %s", s)
	}
	return status, nil
}
