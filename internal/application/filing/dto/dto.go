package dto

import (
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/domain/filing"
	"github.com/lexdoc-ai/lexdoc/internal/shared/mapper"
)

type FilingDTO struct {
	ID            string     `json:"id"`
	CaseID        *string    `json:"caso_id"`
	DocumentID    *string    `json:"documento_origem_id"`
	Type          string     `json:"tipo_peca"`
	TypeLabel     string     `json:"tipo_peca_label"`
	Title         string     `json:"titulo"`
	ContentText   string     `json:"conteudo,omitempty"`
	ContentHTML   string     `json:"conteudo_html,omitempty"`
	Status        string     `json:"status"`
	StatusLabel   string     `json:"status_label"`
	AIGenerated   bool       `json:"gerado_por_ia"`
	LegalDeadline *time.Time `json:"prazo_legal"`
	AgentName     string     `json:"agente_usado"`
	ModelUsed     string     `json:"modelo_usado"`
	CreatedBy     string     `json:"created_by"`
	CreatedAt     time.Time  `json:"created_date"`
	UpdatedAt     time.Time  `json:"updated_date"`
}

func ToFilingDTO(f *filing.Filing) *FilingDTO {
	if f == nil {
		return nil
	}
	out := ToFilingSummaryDTO(f)
	out.ContentText = f.ContentText()
	out.ContentHTML = f.ContentHTML()
	return out
}

// ToFilingSummaryDTO leaves the content out, for listings.
func ToFilingSummaryDTO(f *filing.Filing) *FilingDTO {
	if f == nil {
		return nil
	}
	return &FilingDTO{
		ID:            f.SID(),
		CaseID:        f.CaseSID(),
		DocumentID:    f.DocumentSID(),
		Type:          f.Type().String(),
		TypeLabel:     f.Type().Label(),
		Title:         f.Title(),
		Status:        f.Status().String(),
		StatusLabel:   f.Status().Label(),
		AIGenerated:   f.IsAIGenerated(),
		LegalDeadline: f.LegalDeadline(),
		AgentName:     f.AgentName(),
		ModelUsed:     f.ModelUsed(),
		CreatedBy:     f.CreatedBy(),
		CreatedAt:     f.CreatedAt(),
		UpdatedAt:     f.UpdatedAt(),
	}
}

func ToFilingSummaryDTOs(fs []*filing.Filing) []*FilingDTO {
	return mapper.MapSlice(fs, ToFilingSummaryDTO)
}
