package dto

import (
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/domain/organization"
	"github.com/lexdoc-ai/lexdoc/internal/shared/mapper"
)

type PartiesDTO struct {
	Plaintiff     string `json:"autor"`
	Defendant     string `json:"reu"`
	ProcessNumber string `json:"numero_processo"`
}

type OrganizedDocumentDTO struct {
	ID                 string         `json:"id"`
	BatchID            string         `json:"lote_id,omitempty"`
	OriginalName       string         `json:"nome_original"`
	OriginalURL        string         `json:"arquivo_original_url"`
	OrganizedURL       string         `json:"arquivo_organizado_url"`
	DocumentType       string         `json:"tipo_documento"`
	DocumentTypeLabel  string         `json:"tipo_documento_label"`
	Sector             string         `json:"setor_destino"`
	SectorLabel        string         `json:"setor_destino_label"`
	Status             string         `json:"status"`
	StatusLabel        string         `json:"status_label"`
	PageCount          int            `json:"numero_paginas"`
	PagesReordered     bool           `json:"paginas_reordenadas"`
	SeparatedDocuments []string       `json:"documentos_separados"`
	Parties            PartiesDTO     `json:"partes_identificadas"`
	Keywords           []string       `json:"palavras_chave"`
	SuggestedName      string         `json:"nome_sugerido"`
	SuggestedFolder    string         `json:"caminho_pasta_sugerido"`
	Observations       string         `json:"observacoes"`
	ResponsibleAgent   string         `json:"agente_responsavel"`
	ProcessingSeconds  float64        `json:"tempo_processamento_segundos"`
	AIMetadata         map[string]any `json:"metadados_ia"`
	CreatedAt          time.Time      `json:"created_date"`
	UpdatedAt          time.Time      `json:"updated_date"`
}

type BatchDTO struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	Total       int        `json:"total"`
	Processed   int        `json:"processados"`
	Progress    float64    `json:"progresso"`
	DocumentIDs []string   `json:"documentos"`
	Error       string     `json:"erro,omitempty"`
	StartedAt   time.Time  `json:"iniciado_em"`
	FinishedAt  *time.Time `json:"finalizado_em,omitempty"`
}

func ToOrganizedDocumentDTO(d *organization.OrganizedDocument) *OrganizedDocumentDTO {
	if d == nil {
		return nil
	}
	p := d.Parties()
	meta := d.AIMetadata()
	return &OrganizedDocumentDTO{
		ID:                 d.SID(),
		BatchID:            d.BatchID(),
		OriginalName:       d.OriginalName(),
		OriginalURL:        d.OriginalURL(),
		OrganizedURL:       d.OrganizedURL(),
		DocumentType:       d.DocumentType().String(),
		DocumentTypeLabel:  d.DocumentType().Label(),
		Sector:             d.Sector().String(),
		SectorLabel:        d.Sector().Label(),
		Status:             d.Status().String(),
		StatusLabel:        d.Status().Label(),
		PageCount:          d.PageCount(),
		PagesReordered:     d.PagesReordered(),
		SeparatedDocuments: d.SeparatedDocuments(),
		Parties:            PartiesDTO{Plaintiff: p.Plaintiff, Defendant: p.Defendant, ProcessNumber: p.ProcessNumber},
		Keywords:           d.Keywords(),
		SuggestedName:      d.SuggestedName(),
		SuggestedFolder:    d.SuggestedFolder(),
		Observations:       d.Observations(),
		ResponsibleAgent:   d.ResponsibleAgent(),
		ProcessingSeconds:  d.ProcessingSeconds(),
		AIMetadata: map[string]any{
			"paginas_reordenadas":  meta.PagesReordered,
			"documentos_separados": meta.SeparatedDocuments,
			"palavras_chave":       meta.Keywords,
			"partes_identificadas": meta.Parties,
		},
		CreatedAt: d.CreatedAt(),
		UpdatedAt: d.UpdatedAt(),
	}
}

func ToOrganizedDocumentDTOs(docs []*organization.OrganizedDocument) []*OrganizedDocumentDTO {
	return mapper.MapSlice(docs, ToOrganizedDocumentDTO)
}

func ToBatchDTO(b *organization.Batch) *BatchDTO {
	if b == nil {
		return nil
	}
	ids := b.DocumentSIDs
	if ids == nil {
		ids = []string{}
	}
	return &BatchDTO{
		ID:          b.ID,
		Status:      b.Status.String(),
		Total:       b.Total,
		Processed:   b.Processed,
		Progress:    b.Progress,
		DocumentIDs: ids,
		Error:       b.Error,
		StartedAt:   b.StartedAt,
		FinishedAt:  b.FinishedAt,
	}
}
