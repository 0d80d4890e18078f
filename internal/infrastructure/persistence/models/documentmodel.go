package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/lexdoc-ai/lexdoc/internal/shared/constants"
)

type DocumentModel struct {
	ID              uint           `gorm:"primarykey"`
	SID             string         `gorm:"column:sid;not null;size:32;uniqueIndex:idx_document_sid"`
	TenantCNPJ      string         `gorm:"column:cnpj_escritorio;not null;size:14;index:idx_document_tenant_status,priority:1"`
	CaseSID         *string        `gorm:"column:case_sid;size:32;index:idx_document_case"`
	FileName        string         `gorm:"not null;size:255"`
	FileURL         string         `gorm:"column:file_url;not null;size:1000"`
	StorageKey      string         `gorm:"size:500"`
	Format          string         `gorm:"not null;size:10"`
	SizeBytes       int64          `gorm:"not null;default:0"`
	PageCount       int            `gorm:"not null;default:1"`
	DocumentType    string         `gorm:"not null;size:40"`
	ExtractedText   string
	Context         datatypes.JSON `gorm:"type:json"`
	AnalysisRaw     string
	SuggestedFiling string         `gorm:"size:40"`
	Status          string         `gorm:"not null;size:30;index:idx_document_tenant_status,priority:2"`
	FilingSID       *string        `gorm:"column:filing_sid;size:32;index:idx_document_filing"`
	UploadedBy      string         `gorm:"size:255"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (DocumentModel) TableName() string {
	return constants.TableDocuments
}
