package models

import (
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/shared/constants"
)

type AccessRequestModel struct {
	ID              uint   `gorm:"primarykey"`
	SID             string `gorm:"column:sid;not null;size:32;uniqueIndex:idx_access_request_sid"`
	UserEmail       string `gorm:"not null;size:255;index:idx_access_request_pending,priority:2"`
	UserName        string `gorm:"size:100"`
	CPF             string `gorm:"column:cpf;size:11"`
	RequestedCargo  string `gorm:"not null;size:30"`
	TenantCNPJ      string `gorm:"column:cnpj_escritorio;not null;size:14;index:idx_access_request_pending,priority:1"`
	CompanyName     string `gorm:"size:200"`
	Phone           string `gorm:"size:30"`
	OABNumber       string `gorm:"column:oab_number;size:20"`
	OABUF           string `gorm:"column:oab_uf;size:2"`
	Message         string `gorm:"type:text"`
	Status          string `gorm:"not null;size:20;default:pendente;index:idx_access_request_pending,priority:3"`
	RespondedAt     *time.Time
	RespondedBy     string `gorm:"size:255"`
	RejectionReason string `gorm:"size:1000"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (AccessRequestModel) TableName() string {
	return constants.TableAccessRequests
}
