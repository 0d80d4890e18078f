package valueobjects

import "fmt"

type AgentStatus string

const (
	AgentStatusActive   AgentStatus = "ativo"
	AgentStatusInactive AgentStatus = "inativo"
	AgentStatusTraining AgentStatus = "em_treinamento"
)

var agentStatuses = []AgentStatus{AgentStatusActive, AgentStatusInactive, AgentStatusTraining}

func AgentStatuses() []AgentStatus {
	return append([]AgentStatus(nil), agentStatuses...)
}

func (s AgentStatus) String() string {
	return string(s)
}

func (s AgentStatus) IsValid() bool {
	switch s {
	case AgentStatusActive, AgentStatusInactive, AgentStatusTraining:
		return true
	}
	return false
}

func (s AgentStatus) IsActive() bool {
	return s == AgentStatusActive
}

func (s AgentStatus) Label() string {
	switch s {
	case AgentStatusActive:
		return "Ativo"
	case AgentStatusInactive:
		return "Inativo"
	case AgentStatusTraining:
		return "Em Treinamento"
	default:
		return "Status desconhecido"
	}
}

func NewAgentStatus(s string) (AgentStatus, error) {
	status := AgentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid agent status: %s", s)
	}
	return status, nil
}
