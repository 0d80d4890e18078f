package dto

import (
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/domain/document"
	"github.com/lexdoc-ai/lexdoc/internal/shared/mapper"
)

type DocumentDTO struct {
	ID               string                     `json:"id"`
	CaseID           *string                    `json:"caso_id"`
	FileName         string                     `json:"nome_arquivo"`
	FileURL          string                     `json:"arquivo_url"`
	Format           string                     `json:"formato"`
	SizeBytes        int64                      `json:"tamanho_bytes"`
	PageCount        int                        `json:"numero_paginas"`
	DocumentType     string                     `json:"tipo_documento"`
	DocumentTypeName string                     `json:"tipo_documento_label"`
	ExtractedText    string                     `json:"texto_extraido,omitempty"`
	Context          *document.ExtractedContext `json:"contexto_extraido"`
	SuggestedFiling  string                     `json:"peca_sugerida"`
	Status           string                     `json:"status_processamento"`
	StatusLabel      string                     `json:"status_processamento_label"`
	FilingID         *string                    `json:"peca_gerada_id"`
	UploadedBy       string                     `json:"enviado_por"`
	CreatedAt        time.Time                  `json:"created_date"`
	UpdatedAt        time.Time                  `json:"updated_date"`
}

// ToDocumentDTO maps the full document, extracted text included.
func ToDocumentDTO(d *document.Document) *DocumentDTO {
	if d == nil {
		return nil
	}
	out := ToDocumentSummaryDTO(d)
	out.ExtractedText = d.ExtractedText()
	return out
}

// ToDocumentSummaryDTO leaves the extracted text out, for listings.
func ToDocumentSummaryDTO(d *document.Document) *DocumentDTO {
	if d == nil {
		return nil
	}
	return &DocumentDTO{
		ID:               d.SID(),
		CaseID:           d.CaseSID(),
		FileName:         d.FileName(),
		FileURL:          d.FileURL(),
		Format:           d.Format().String(),
		SizeBytes:        d.SizeBytes(),
		PageCount:        d.PageCount(),
		DocumentType:     d.DocumentType().String(),
		DocumentTypeName: d.DocumentType().Label(),
		Context:          d.Context(),
		SuggestedFiling:  d.SuggestedFiling(),
		Status:           d.Status().String(),
		StatusLabel:      d.Status().Label(),
		FilingID:         d.FilingSID(),
		UploadedBy:       d.UploadedBy(),
		CreatedAt:        d.CreatedAt(),
		UpdatedAt:        d.UpdatedAt(),
	}
}

func ToDocumentSummaryDTOs(docs []*document.Document) []*DocumentDTO {
	return mapper.MapSlice(docs, ToDocumentSummaryDTO)
}
