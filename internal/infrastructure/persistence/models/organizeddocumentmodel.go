package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/lexdoc-ai/lexdoc/internal/shared/constants"
)

type OrganizedDocumentModel struct {
	ID                 uint           `gorm:"primarykey"`
	SID                string         `gorm:"column:sid;not null;size:32;uniqueIndex:idx_organized_document_sid"`
	TenantCNPJ         string         `gorm:"column:cnpj_escritorio;not null;size:14;index:idx_organized_document_tenant"`
	BatchID            string         `gorm:"size:64;index:idx_organized_document_batch"`
	OriginalName       string         `gorm:"not null;size:255"`
	OriginalURL        string         `gorm:"column:original_url;not null;size:1000"`
	OrganizedURL       string         `gorm:"column:organized_url;size:1000"`
	StorageKey         string         `gorm:"size:500"`
	DocumentType       string         `gorm:"not null;size:40"`
	Sector             string         `gorm:"not null;size:30"`
	Status             string         `gorm:"not null;size:20"`
	PageCount          int            `gorm:"not null;default:1"`
	PagesReordered     bool           `gorm:"not null;default:false"`
	SeparatedDocuments datatypes.JSON `gorm:"type:json"`
	Parties            datatypes.JSON `gorm:"type:json"`
	Keywords           datatypes.JSON `gorm:"type:json"`
	SuggestedName      string         `gorm:"size:255"`
	SuggestedFolder    string         `gorm:"size:500"`
	Observations       string         `gorm:"type:text"`
	ResponsibleAgent   string         `gorm:"size:200"`
	ProcessingSeconds  float64        `gorm:"not null;default:0"`
	AIMetadata         datatypes.JSON `gorm:"column:ai_metadata;type:json"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (OrganizedDocumentModel) TableName() string {
	return constants.TableOrganizedDocuments
}
