package tenant

import (
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/application/tenant/usecases"
	domaintenant "github.com/lexdoc-ai/lexdoc/internal/domain/tenant"
)

type OnboardTenantRequest struct {
	CNPJ         string `json:"cnpj" binding:"required,cnpj"`
	CompanyName  string `json:"nome_empresa" binding:"required,min=2,max=200"`
	Address      string `json:"endereco" binding:"max=300"`
	Phone        string `json:"telefone" binding:"max=30"`
	ContactEmail string `json:"email_contato" binding:"omitempty,email"`
}

func (r *OnboardTenantRequest) ToCommand(sc *session.Context) usecases.OnboardTenantCommand {
	return usecases.OnboardTenantCommand{
		Session:      sc,
		CNPJ:         r.CNPJ,
		CompanyName:  r.CompanyName,
		Address:      r.Address,
		Phone:        r.Phone,
		ContactEmail: r.ContactEmail,
	}
}

type UpdateCompanyDataRequest struct {
	TradeName    string `json:"nome_fantasia" binding:"required,min=2,max=200"`
	LegalName    string `json:"razao_social" binding:"max=200"`
	Address      string `json:"endereco" binding:"max=300"`
	Phone        string `json:"telefone" binding:"max=30"`
	ContactEmail string `json:"email_contato" binding:"omitempty,email"`
}

func (r *UpdateCompanyDataRequest) ToCommand(sc *session.Context) usecases.UpdateCompanyDataCommand {
	return usecases.UpdateCompanyDataCommand{
		Session:      sc,
		TradeName:    r.TradeName,
		LegalName:    r.LegalName,
		Address:      r.Address,
		Phone:        r.Phone,
		ContactEmail: r.ContactEmail,
	}
}

// UpdateAISettingsRequest is a partial update; omitted fields keep their value.
type UpdateAISettingsRequest struct {
	PreferredAIModel   *string  `json:"modelo_ia_preferido" binding:"omitempty,min=1,max=60"`
	PracticeAreas      []string `json:"areas_atuacao" binding:"omitempty,max=30,dive,min=1,max=60"`
	MLEnabled          *bool    `json:"ml_habilitado"`
	AutoClassification *bool    `json:"auto_classificacao"`
	AutoOrganization   *bool    `json:"auto_organizacao"`
}

func (r *UpdateAISettingsRequest) ToCommand(sc *session.Context) usecases.UpdateSettingsCommand {
	return usecases.UpdateSettingsCommand{
		Session: sc,
		Update: domaintenant.SettingsUpdate{
			PreferredAIModel:   r.PreferredAIModel,
			PracticeAreas:      r.PracticeAreas,
			MLEnabled:          r.MLEnabled,
			AutoClassification: r.AutoClassification,
			AutoOrganization:   r.AutoOrganization,
		},
	}
}

type UpdateBrandingRequest struct {
	PrimaryColor   string `json:"cor_primaria" binding:"required,hexcolor6"`
	SecondaryColor string `json:"cor_secundaria" binding:"required,hexcolor6"`
}
