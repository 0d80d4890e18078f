package valueobjects

import "fmt"

// ProcessingStatus tracks a document through the intake workflow.
type ProcessingStatus string

const (
	ProcessingStatusPending    ProcessingStatus = "pendente"
	ProcessingStatusProcessing ProcessingStatus = "processando_ocr"
	ProcessingStatusCompleted  ProcessingStatus = "concluido"
	ProcessingStatusError      ProcessingStatus = "erro"
)

var processingStatuses = []ProcessingStatus{
	ProcessingStatusPending,
	ProcessingStatusProcessing,
	ProcessingStatusCompleted,
	ProcessingStatusError,
}

// ProcessingStatuses returns every declared status.
func ProcessingStatuses() []ProcessingStatus {
	return append([]ProcessingStatus(nil), processingStatuses...)
}

func (s ProcessingStatus) String() string {
	return string(s)
}

func (s ProcessingStatus) IsValid() bool {
	switch s {
	case ProcessingStatusPending, ProcessingStatusProcessing, ProcessingStatusCompleted, ProcessingStatusError:
		return true
	}
	return false
}

func (s ProcessingStatus) Label() string {
	switch s {
	case ProcessingStatusPending:
		return "Pendente"
	case ProcessingStatusProcessing:
		return "Processando"
	case ProcessingStatusCompleted:
		return "Concluído"
	case ProcessingStatusError:
		return "Erro"
	default:
		return "Desconhecido"
	}
}

func NewProcessingStatus(s string) (ProcessingStatus, error) {
	status := ProcessingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid processing status: %s", s)
	}
	return status, nil
}
