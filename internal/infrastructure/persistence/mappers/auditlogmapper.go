package mappers

import (
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/models"
	"github.com/lexdoc-ai/lexdoc/internal/shared/mapper"
)

type AuditLogMapper interface {
	ToEntity(model *models.AuditLogModel) (*audit.Entry, error)
	ToModel(entity *audit.Entry) (*models.AuditLogModel, error)
	ToEntities(models []*models.AuditLogModel) ([]*audit.Entry, error)
}

type AuditLogMapperImpl struct{}

func NewAuditLogMapper() AuditLogMapper {
	return &AuditLogMapperImpl{}
}

func (m *AuditLogMapperImpl) ToEntity(model *models.AuditLogModel) (*audit.Entry, error) {
	if model == nil {
		return nil, nil
	}

	details := map[string]any{}
	if err := fromJSONColumn("details", model.Details, &details); err != nil {
		return nil, err
	}

	return audit.ReconstructEntry(audit.EntryState{
		ID:         model.ID,
		SID:        model.SID,
		TenantCNPJ: model.TenantCNPJ,
		UserEmail:  model.UserEmail,
		UserName:   model.UserName,
		Action:     audit.Action(model.Action),
		EntityType: model.EntityType,
		EntityID:   model.EntityID,
		Success:    model.Success,
		Details:    details,
		CreatedAt:  model.CreatedAt,
	}), nil
}

func (m *AuditLogMapperImpl) ToModel(entity *audit.Entry) (*models.AuditLogModel, error) {
	if entity == nil {
		return nil, nil
	}

	details, err := toJSONColumn("details", entity.Details())
	if err != nil {
		return nil, err
	}

	return &models.AuditLogModel{
		ID:         entity.ID(),
		SID:        entity.SID(),
		TenantCNPJ: entity.TenantCNPJ(),
		UserEmail:  entity.UserEmail(),
		UserName:   entity.UserName(),
		Action:     entity.Action().String(),
		EntityType: entity.EntityType(),
		EntityID:   entity.EntityID(),
		Success:    entity.Success(),
		Details:    details,
		CreatedAt:  entity.CreatedAt(),
	}, nil
}

func (m *AuditLogMapperImpl) ToEntities(models []*models.AuditLogModel) ([]*audit.Entry, error) {
	return mapper.MapSliceWithError(models, m.ToEntity)
}
