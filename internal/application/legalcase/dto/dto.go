package dto

import (
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/domain/document"
	"github.com/lexdoc-ai/lexdoc/internal/domain/filing"
	"github.com/lexdoc-ai/lexdoc/internal/domain/legalcase"
	"github.com/lexdoc-ai/lexdoc/internal/shared/mapper"
)

type CaseDTO struct {
	ID                string     `json:"id"`
	Title             string     `json:"titulo"`
	Client            string     `json:"cliente"`
	ProcessNumber     string     `json:"numero_processo"`
	Area              string     `json:"area_direito"`
	AreaLabel         string     `json:"area_direito_label"`
	Status            string     `json:"status"`
	StatusLabel       string     `json:"status_label"`
	ResponsibleLawyer string     `json:"advogado_responsavel"`
	OpposingParty     string     `json:"parte_contraria"`
	ClaimValue        *float64   `json:"valor_causa"`
	NextDeadline      *time.Time `json:"prazo_proximo"`
	Summary           string     `json:"descricao"`
	CreatedAt         time.Time  `json:"created_date"`
	UpdatedAt         time.Time  `json:"updated_date"`
}

// CaseDocumentDTO is the short form of a document listed under a case.
type CaseDocumentDTO struct {
	ID           string    `json:"id"`
	FileName     string    `json:"nome_arquivo"`
	DocumentType string    `json:"tipo_documento"`
	Status       string    `json:"status_processamento"`
	CreatedAt    time.Time `json:"created_date"`
}

// CaseFilingDTO is the short form of a filing listed under a case.
type CaseFilingDTO struct {
	ID            string     `json:"id"`
	Title         string     `json:"titulo"`
	Type          string     `json:"tipo_peca"`
	Status        string     `json:"status"`
	LegalDeadline *time.Time `json:"prazo_legal"`
}

type CaseDetailDTO struct {
	*CaseDTO
	Documents []*CaseDocumentDTO `json:"documentos"`
	Filings   []*CaseFilingDTO   `json:"pecas"`
}

func ToCaseDTO(c *legalcase.Case) *CaseDTO {
	if c == nil {
		return nil
	}
	return &CaseDTO{
		ID:                c.SID(),
		Title:             c.Title(),
		Client:            c.Client(),
		ProcessNumber:     c.ProcessNumber(),
		Area:              c.Area().String(),
		AreaLabel:         c.Area().Label(),
		Status:            c.Status().String(),
		StatusLabel:       c.Status().Label(),
		ResponsibleLawyer: c.ResponsibleLawyer(),
		OpposingParty:     c.OpposingParty(),
		ClaimValue:        c.ClaimValue(),
		NextDeadline:      c.NextDeadline(),
		Summary:           c.Summary(),
		CreatedAt:         c.CreatedAt(),
		UpdatedAt:         c.UpdatedAt(),
	}
}

func ToCaseDTOs(cs []*legalcase.Case) []*CaseDTO {
	return mapper.MapSlice(cs, ToCaseDTO)
}

func ToCaseDocumentDTO(d *document.Document) *CaseDocumentDTO {
	return &CaseDocumentDTO{
		ID:           d.SID(),
		FileName:     d.FileName(),
		DocumentType: string(d.DocumentType()),
		Status:       string(d.Status()),
		CreatedAt:    d.CreatedAt(),
	}
}

func ToCaseFilingDTO(f *filing.Filing) *CaseFilingDTO {
	return &CaseFilingDTO{
		ID:            f.SID(),
		Title:         f.Title(),
		Type:          string(f.Type()),
		Status:        string(f.Status()),
		LegalDeadline: f.LegalDeadline(),
	}
}
