package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/lexdoc-ai/lexdoc/internal/shared/constants"
)

type DepartmentModel struct {
	ID                  uint           `gorm:"primarykey"`
	SID                 string         `gorm:"column:sid;not null;size:32;uniqueIndex:idx_department_sid"`
	TenantCNPJ          string         `gorm:"column:cnpj_escritorio;not null;size:14;index:idx_department_tenant"`
	Name                string         `gorm:"not null;size:100"`
	Description         string         `gorm:"size:500"`
	Color               string         `gorm:"size:7"`
	Icon                string         `gorm:"size:50"`
	AIModelID           string         `gorm:"column:ai_model_id;size:100"`
	Metrics             datatypes.JSON `gorm:"type:json"`
	ClassificationRules datatypes.JSON `gorm:"type:json"`
	Active              bool           `gorm:"not null;default:true"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (DepartmentModel) TableName() string {
	return constants.TableDepartments
}
