package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/lexdoc-ai/lexdoc/internal/shared/constants"
)

// TenantModel is the persistence model of a law office.
type TenantModel struct {
	ID             uint           `gorm:"primarykey"`
	CNPJ           string         `gorm:"column:cnpj;not null;size:14;uniqueIndex:idx_tenant_cnpj"`
	TradeName      string         `gorm:"not null;size:200"`
	LegalName      string         `gorm:"size:200"`
	Sigla          string         `gorm:"size:20"`
	CustomDomain   string         `gorm:"size:100"`
	Address        string         `gorm:"size:500"`
	Phone          string         `gorm:"size:30"`
	ContactEmail   string         `gorm:"size:255"`
	LogoURL        string         `gorm:"size:1000"`
	PrimaryColor   string         `gorm:"size:7"`
	SecondaryColor string         `gorm:"size:7"`
	Settings       datatypes.JSON `gorm:"type:json"`
	MLMetrics      datatypes.JSON `gorm:"column:ml_metrics;type:json"`
	Active         bool           `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (TenantModel) TableName() string {
	return constants.TableTenants
}
