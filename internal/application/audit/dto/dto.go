package dto

import (
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/shared/mapper"
)

type AuditLogDTO struct {
	ID          string         `json:"id"`
	UserEmail   string         `json:"usuario_email"`
	UserName    string         `json:"usuario_nome"`
	Action      string         `json:"acao"`
	ActionLabel string         `json:"acao_label"`
	EntityType  string         `json:"entidade_tipo"`
	EntityID    string         `json:"entidade_id"`
	Success     bool           `json:"sucesso"`
	Details     map[string]any `json:"detalhes"`
	CreatedAt   time.Time      `json:"created_date"`
}

func ToAuditLogDTO(e *audit.Entry) *AuditLogDTO {
	if e == nil {
		return nil
	}
	return &AuditLogDTO{
		ID:          e.SID(),
		UserEmail:   e.UserEmail(),
		UserName:    e.UserName(),
		Action:      e.Action().String(),
		ActionLabel: e.Action().Label(),
		EntityType:  e.EntityType(),
		EntityID:    e.EntityID(),
		Success:     e.Success(),
		Details:     e.Details(),
		CreatedAt:   e.CreatedAt(),
	}
}

func ToAuditLogDTOs(es []*audit.Entry) []*AuditLogDTO {
	out := mapper.MapSlice(es, ToAuditLogDTO)
	if out == nil {
		out = []*AuditLogDTO{}
	}
	return out
}
