package dto

import (
	"time"

	auditdto "github.com/lexdoc-ai/lexdoc/internal/application/audit/dto"
)

// DashboardDTO is the per-office overview shown on the home page.
type DashboardDTO struct {
	Cases           CaseStats               `json:"casos"`
	Documents       StatusCount             `json:"documentos"`
	Filings         FilingStats             `json:"pecas"`
	ActiveAgents    int64                   `json:"agentes_ativos"`
	UrgentDeadlines []*DeadlineDTO          `json:"prazos_urgentes"`
	RecentActivity  []*auditdto.AuditLogDTO `json:"atividade_recente"`
	GeneratedAt     time.Time               `json:"gerado_em"`
}

type StatusCount struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"por_status"`
}

type CaseStats struct {
	StatusCount
	Active int64 `json:"ativos"`
}

type FilingStats struct {
	StatusCount
	InReview     int64 `json:"em_revisao"`
	ApprovalRate int   `json:"taxa_aprovacao"`
}

type DeadlineDTO struct {
	CaseID        string    `json:"caso_id"`
	Title         string    `json:"titulo"`
	Client        string    `json:"cliente"`
	Status        string    `json:"status"`
	NextDeadline  time.Time `json:"prazo_proximo"`
	DaysRemaining int       `json:"dias_restantes"`
}
