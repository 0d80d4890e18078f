package dto

import (
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/domain/accessrequest"
	"github.com/lexdoc-ai/lexdoc/internal/shared/mapper"
)

type AccessRequestDTO struct {
	ID              string     `json:"id"`
	UserEmail       string     `json:"usuario_email"`
	UserName        string     `json:"nome_completo"`
	CPF             string     `json:"cpf,omitempty"`
	RequestedCargo  string     `json:"cargo_solicitado"`
	CargoLabel      string     `json:"cargo_solicitado_label"`
	TenantCNPJ      string     `json:"cnpj_empresa"`
	CompanyName     string     `json:"nome_empresa"`
	Phone           string     `json:"telefone,omitempty"`
	OABNumber       string     `json:"numero_oab,omitempty"`
	OABUF           string     `json:"uf_oab,omitempty"`
	Message         string     `json:"mensagem,omitempty"`
	Status          string     `json:"status"`
	StatusLabel     string     `json:"status_label"`
	RespondedAt     *time.Time `json:"data_resposta,omitempty"`
	RespondedBy     string     `json:"respondido_por,omitempty"`
	RejectionReason string     `json:"motivo_rejeicao,omitempty"`
	CreatedAt       time.Time  `json:"created_date"`
}

func ToAccessRequestDTO(r *accessrequest.AccessRequest) *AccessRequestDTO {
	if r == nil {
		return nil
	}
	return &AccessRequestDTO{
		ID:              r.SID(),
		UserEmail:       r.UserEmail(),
		UserName:        r.UserName(),
		CPF:             r.CPF(),
		RequestedCargo:  r.RequestedCargo().String(),
		CargoLabel:      r.RequestedCargo().Label(),
		TenantCNPJ:      r.TenantCNPJ(),
		CompanyName:     r.CompanyName(),
		Phone:           r.Phone(),
		OABNumber:       r.OABNumber(),
		OABUF:           r.OABUF(),
		Message:         r.Message(),
		Status:          r.Status().String(),
		StatusLabel:     r.Status().Label(),
		RespondedAt:     r.RespondedAt(),
		RespondedBy:     r.RespondedBy(),
		RejectionReason: r.RejectionReason(),
		CreatedAt:       r.CreatedAt(),
	}
}

func ToAccessRequestDTOs(rs []*accessrequest.AccessRequest) []*AccessRequestDTO {
	return mapper.MapSlice(rs, ToAccessRequestDTO)
}
