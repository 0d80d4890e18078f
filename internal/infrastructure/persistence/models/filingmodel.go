package models

import (
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/shared/constants"
)

type FilingModel struct {
	ID            uint    `gorm:"primarykey"`
	SID           string  `gorm:"column:sid;not null;size:32;uniqueIndex:idx_filing_sid"`
	TenantCNPJ    string  `gorm:"column:cnpj_escritorio;not null;size:14;index:idx_filing_tenant_status,priority:1"`
	CaseSID       *string `gorm:"column:case_sid;size:32;index:idx_filing_case"`
	DocumentSID   *string `gorm:"column:document_sid;size:32;index:idx_filing_document"`
	FilingType    string  `gorm:"not null;size:40"`
	Title         string  `gorm:"not null;size:300"`
	ContentText   string
	ContentHTML   string  `gorm:"column:content_html"`
	Status        string  `gorm:"not null;size:20;index:idx_filing_tenant_status,priority:2"`
	AIGenerated   bool    `gorm:"column:ai_generated;not null;default:false"`
	LegalDeadline *time.Time
	AgentName     string `gorm:"size:200"`
	ModelUsed     string `gorm:"size:100"`
	CreatedBy     string `gorm:"size:255"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (FilingModel) TableName() string {
	return constants.TableFilings
}
