package dto

import (
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/domain/tenant"
	"github.com/lexdoc-ai/lexdoc/internal/shared/mapper"
)

type TenantDTO struct {
	CNPJ           string           `json:"cnpj"`
	CNPJFormatted  string           `json:"cnpj_formatado"`
	TradeName      string           `json:"nome_fantasia"`
	LegalName      string           `json:"razao_social"`
	Sigla          string           `json:"sigla"`
	CustomDomain   string           `json:"dominio_customizado"`
	Address        string           `json:"endereco"`
	Phone          string           `json:"telefone"`
	ContactEmail   string           `json:"email_contato"`
	LogoURL        string           `json:"logo_url"`
	PrimaryColor   string           `json:"cor_primaria"`
	SecondaryColor string           `json:"cor_secundaria"`
	Settings       tenant.Settings  `json:"configuracoes"`
	MLMetrics      tenant.MLMetrics `json:"metricas_ml"`
	Active         bool             `json:"ativo"`
	CreatedAt      time.Time        `json:"created_date"`
	UpdatedAt      time.Time        `json:"updated_date"`
}

type DepartmentDTO struct {
	ID                  string                   `json:"id"`
	Name                string                   `json:"nome"`
	Description         string                   `json:"descricao"`
	Color               string                   `json:"cor"`
	Icon                string                   `json:"icone"`
	AIModelID           string                   `json:"modelo_ia_id"`
	Metrics             tenant.DepartmentMetrics `json:"metricas"`
	ClassificationRules []string                 `json:"regras_classificacao"`
	Active              bool                     `json:"ativo"`
	CreatedAt           time.Time                `json:"created_date"`
}

func ToTenantDTO(t *tenant.Tenant) *TenantDTO {
	if t == nil {
		return nil
	}
	return &TenantDTO{
		CNPJ:           t.CNPJ(),
		CNPJFormatted:  tenant.FormatCNPJ(t.CNPJ()),
		TradeName:      t.TradeName(),
		LegalName:      t.LegalName(),
		Sigla:          t.Sigla(),
		CustomDomain:   t.CustomDomain(),
		Address:        t.Address(),
		Phone:          t.Phone(),
		ContactEmail:   t.ContactEmail(),
		LogoURL:        t.LogoURL(),
		PrimaryColor:   t.PrimaryColor(),
		SecondaryColor: t.SecondaryColor(),
		Settings:       t.Settings(),
		MLMetrics:      t.MLMetrics(),
		Active:         t.IsActive(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

func ToDepartmentDTO(d *tenant.Department) *DepartmentDTO {
	if d == nil {
		return nil
	}
	rules := d.ClassificationRules()
	if rules == nil {
		rules = []string{}
	}
	return &DepartmentDTO{
		ID:                  d.SID(),
		Name:                d.Name(),
		Description:         d.Description(),
		Color:               d.Color(),
		Icon:                d.Icon(),
		AIModelID:           d.AIModelID(),
		Metrics:             d.Metrics(),
		ClassificationRules: rules,
		Active:              d.IsActive(),
		CreatedAt:           d.CreatedAt(),
	}
}

func ToDepartmentDTOs(depts []*tenant.Department) []*DepartmentDTO {
	return mapper.MapSlice(depts, ToDepartmentDTO)
}
