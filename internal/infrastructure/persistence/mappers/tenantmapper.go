package mappers

import (
	"fmt"

	"github.com/lexdoc-ai/lexdoc/internal/domain/tenant"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/models"
	"github.com/lexdoc-ai/lexdoc/internal/shared/mapper"
)

// TenantMapper converts between offices, departments and their models.
type TenantMapper interface {
	ToEntity(model *models.TenantModel) (*tenant.Tenant, error)
	ToModel(entity *tenant.Tenant) (*models.TenantModel, error)
	DepartmentToEntity(model *models.DepartmentModel) (*tenant.Department, error)
	DepartmentToModel(entity *tenant.Department) (*models.DepartmentModel, error)
	DepartmentsToEntities(models []*models.DepartmentModel) ([]*tenant.Department, error)
}

type TenantMapperImpl struct{}

func NewTenantMapper() TenantMapper {
	return &TenantMapperImpl{}
}

func (m *TenantMapperImpl) ToEntity(model *models.TenantModel) (*tenant.Tenant, error) {
	if model == nil {
		return nil, nil
	}

	settings := tenant.DefaultSettings()
	if err := fromJSONColumn("settings", model.Settings, &settings); err != nil {
		return nil, err
	}
	var metrics tenant.MLMetrics
	if err := fromJSONColumn("ml_metrics", model.MLMetrics, &metrics); err != nil {
		return nil, err
	}

	entity, err := tenant.ReconstructTenant(tenant.TenantState{
		ID:             model.ID,
		CNPJ:           model.CNPJ,
		TradeName:      model.TradeName,
		LegalName:      model.LegalName,
		Sigla:          model.Sigla,
		CustomDomain:   model.CustomDomain,
		Address:        model.Address,
		Phone:          model.Phone,
		ContactEmail:   model.ContactEmail,
		LogoURL:        model.LogoURL,
		PrimaryColor:   model.PrimaryColor,
		SecondaryColor: model.SecondaryColor,
		Settings:       settings,
		MLMetrics:      metrics,
		Active:         model.Active,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct tenant entity: %w", err)
	}
	return entity, nil
}

func (m *TenantMapperImpl) ToModel(entity *tenant.Tenant) (*models.TenantModel, error) {
	if entity == nil {
		return nil, nil
	}

	settings, err := toJSONColumn("settings", entity.Settings())
	if err != nil {
		return nil, err
	}
	metrics, err := toJSONColumn("ml_metrics", entity.MLMetrics())
	if err != nil {
		return nil, err
	}

	return &models.TenantModel{
		ID:             entity.ID(),
		CNPJ:           entity.CNPJ(),
		TradeName:      entity.TradeName(),
		LegalName:      entity.LegalName(),
		Sigla:          entity.Sigla(),
		CustomDomain:   entity.CustomDomain(),
		Address:        entity.Address(),
		Phone:          entity.Phone(),
		ContactEmail:   entity.ContactEmail(),
		LogoURL:        entity.LogoURL(),
		PrimaryColor:   entity.PrimaryColor(),
		SecondaryColor: entity.SecondaryColor(),
		Settings:       settings,
		MLMetrics:      metrics,
		Active:         entity.IsActive(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *TenantMapperImpl) DepartmentToEntity(model *models.DepartmentModel) (*tenant.Department, error) {
	if model == nil {
		return nil, nil
	}

	var metrics tenant.DepartmentMetrics
	if err := fromJSONColumn("metrics", model.Metrics, &metrics); err != nil {
		return nil, err
	}
	var rules []string
	if err := fromJSONColumn("classification_rules", model.ClassificationRules, &rules); err != nil {
		return nil, err
	}

	entity, err := tenant.ReconstructDepartment(tenant.DepartmentState{
		ID:                  model.ID,
		SID:                 model.SID,
		TenantCNPJ:          model.TenantCNPJ,
		Name:                model.Name,
		Description:         model.Description,
		Color:               model.Color,
		Icon:                model.Icon,
		AIModelID:           model.AIModelID,
		Metrics:             metrics,
		ClassificationRules: rules,
		Active:              model.Active,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct department entity: %w", err)
	}
	return entity, nil
}

func (m *TenantMapperImpl) DepartmentToModel(entity *tenant.Department) (*models.DepartmentModel, error) {
	if entity == nil {
		return nil, nil
	}

	metrics, err := toJSONColumn("metrics", entity.Metrics())
	if err != nil {
		return nil, err
	}
	rules := entity.ClassificationRules()
	if rules == nil {
		rules = []string{}
	}
	rulesJSON, err := toJSONColumn("classification_rules", rules)
	if err != nil {
		return nil, err
	}

	return &models.DepartmentModel{
		ID:                  entity.ID(),
		SID:                 entity.SID(),
		TenantCNPJ:          entity.TenantCNPJ(),
		Name:                entity.Name(),
		Description:         entity.Description(),
		Color:               entity.Color(),
		Icon:                entity.Icon(),
		AIModelID:           entity.AIModelID(),
		Metrics:             metrics,
		ClassificationRules: rulesJSON,
		Active:              entity.IsActive(),
		CreatedAt:           entity.CreatedAt(),
		UpdatedAt:           entity.UpdatedAt(),
	}, nil
}

func (m *TenantMapperImpl) DepartmentsToEntities(models []*models.DepartmentModel) ([]*tenant.Department, error) {
	return mapper.MapSliceWithError(models, m.DepartmentToEntity)
}
