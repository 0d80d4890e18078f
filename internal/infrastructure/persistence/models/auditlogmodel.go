package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/lexdoc-ai/lexdoc/internal/shared/constants"
)

type AuditLogModel struct {
	ID         uint           `gorm:"primarykey"`
	SID        string         `gorm:"column:sid;not null;size:32;uniqueIndex:idx_audit_log_sid"`
	TenantCNPJ string         `gorm:"column:cnpj_escritorio;size:14;index:idx_audit_log_tenant_created,priority:1"`
	UserEmail  string         `gorm:"not null;size:255"`
	UserName   string         `gorm:"size:100"`
	Action     string         `gorm:"not null;size:40"`
	EntityType string         `gorm:"size:50"`
	EntityID   string         `gorm:"size:64"`
	Success    bool           `gorm:"not null;default:true"`
	Details    datatypes.JSON `gorm:"type:json"`
	CreatedAt  time.Time      `gorm:"index:idx_audit_log_tenant_created,priority:2"`
}

func (AuditLogModel) TableName() string {
	return constants.TableAuditLogs
}
