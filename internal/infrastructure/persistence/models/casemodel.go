package models

import (
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/shared/constants"
)

type CaseModel struct {
	ID                uint   `gorm:"primarykey"`
	SID               string `gorm:"column:sid;not null;size:32;uniqueIndex:idx_case_sid"`
	TenantCNPJ        string `gorm:"column:cnpj_escritorio;not null;size:14;index:idx_case_tenant_status,priority:1"`
	Title             string `gorm:"not null;size:300"`
	Client            string `gorm:"not null;size:200"`
	ProcessNumber     string `gorm:"size:50"`
	Area              string `gorm:"not null;size:30"`
	Status            string `gorm:"not null;size:30;index:idx_case_tenant_status,priority:2"`
	ResponsibleLawyer string `gorm:"size:255"`
	OpposingParty     string `gorm:"size:200"`
	ClaimValue        *float64
	NextDeadline      *time.Time `gorm:"index:idx_case_next_deadline"`
	Summary           string     `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (CaseModel) TableName() string {
	return constants.TableCases
}
