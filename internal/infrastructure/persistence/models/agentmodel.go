package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/lexdoc-ai/lexdoc/internal/shared/constants"
)

// AgentModel keeps usage counters in plain columns so they can be
// incremented with a single UPDATE.
type AgentModel struct {
	ID                 uint           `gorm:"primarykey"`
	SID                string         `gorm:"column:sid;not null;size:32;uniqueIndex:idx_agent_sid"`
	TenantCNPJ         string         `gorm:"column:cnpj_escritorio;not null;size:14;index:idx_agent_tenant_status,priority:1"`
	Name               string         `gorm:"not null;size:200"`
	Description        string         `gorm:"size:1000"`
	Instructions       string         `gorm:"type:text"`
	Keywords           datatypes.JSON `gorm:"type:json"`
	ActionTriggers     datatypes.JSON `gorm:"type:json"`
	Personality        datatypes.JSON `gorm:"type:json"`
	Model              string         `gorm:"not null;size:100"`
	Temperature        float64        `gorm:"not null"`
	MaxTokens          int            `gorm:"not null"`
	Language           string         `gorm:"size:10"`
	PostAnalysisAction string         `gorm:"size:40"`
	Status             string         `gorm:"not null;size:20;index:idx_agent_tenant_status,priority:2"`
	TotalExecutions    int            `gorm:"not null;default:0"`
	DocumentsAnalyzed  int            `gorm:"not null;default:0"`
	FilingsGenerated   int            `gorm:"not null;default:0"`
	SuccessRate        float64        `gorm:"not null;default:0"`
	AverageTimeSeconds float64        `gorm:"not null;default:0"`
	LastExecution      *time.Time
	CreatedBy          string `gorm:"size:255"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (AgentModel) TableName() string {
	return constants.TableAgents
}
