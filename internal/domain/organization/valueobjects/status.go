package valueobjects

type OrganizationStatus string

const (
	OrganizationStatusProcessing OrganizationStatus = "processando"
	OrganizationStatusOrganized  OrganizationStatus = "organizado"
	OrganizationStatusError      OrganizationStatus = "erro"
)

var organizationStatuses = []OrganizationStatus{
	OrganizationStatusProcessing,
	OrganizationStatusOrganized,
	OrganizationStatusError,
}

func OrganizationStatuses() []OrganizationStatus {
	return append([]OrganizationStatus(nil), organizationStatuses...)
}

func (s OrganizationStatus) String() string {
	return string(s)
}

func (s OrganizationStatus) IsValid() bool {
	switch s {
	case OrganizationStatusProcessing, OrganizationStatusOrganized, OrganizationStatusError:
		return true
	}
	return false
}

func (s OrganizationStatus) Label() string {
	switch s {
	case OrganizationStatusProcessing:
		return "Processando"
	case OrganizationStatusOrganized:
		return "Organizado"
	case OrganizationStatusError:
		return "Erro"
	default:
		return "Status desconhecido"
	}
}

// BatchStatus is the state of a background organization batch.
type BatchStatus string

const (
	BatchStatusRunning   BatchStatus = "running"
	BatchStatusCompleted BatchStatus = "completed"
	BatchStatusFailed    BatchStatus = "failed"
)

var batchStatuses = []BatchStatus{BatchStatusRunning, BatchStatusCompleted, BatchStatusFailed}

func BatchStatuses() []BatchStatus {
	return append([]BatchStatus(nil), batchStatuses...)
}

func (s BatchStatus) String() string {
	return string(s)
}

func (s BatchStatus) IsValid() bool {
	switch s {
	case BatchStatusRunning, BatchStatusCompleted, BatchStatusFailed:
		return true
	}
	return false
}

func (s BatchStatus) IsFinal() bool {
	return s == BatchStatusCompleted || s == BatchStatusFailed
}

func (s BatchStatus) Label() string {
	switch s {
	case BatchStatusRunning:
		return "Em processamento"
	case BatchStatusCompleted:
		return "Concluído"
	case BatchStatusFailed:
		return "Falhou"
	default:
		return "Status desconhecido"
	}
}
