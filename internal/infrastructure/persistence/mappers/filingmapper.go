package mappers

import (
	"fmt"

	"github.com/lexdoc-ai/lexdoc/internal/domain/filing"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/filing/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/models"
	"github.com/lexdoc-ai/lexdoc/internal/shared/mapper"
)

type FilingMapper interface {
	ToEntity(model *models.FilingModel) (*filing.Filing, error)
	ToModel(entity *filing.Filing) (*models.FilingModel, error)
	ToEntities(models []*models.FilingModel) ([]*filing.Filing, error)
}

type FilingMapperImpl struct{}

func NewFilingMapper() FilingMapper {
	return &FilingMapperImpl{}
}

func (m *FilingMapperImpl) ToEntity(model *models.FilingModel) (*filing.Filing, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := filing.ReconstructFiling(filing.FilingState{
		ID:            model.ID,
		SID:           model.SID,
		TenantCNPJ:    model.TenantCNPJ,
		CaseSID:       model.CaseSID,
		DocumentSID:   model.DocumentSID,
		FilingType:    vo.FilingType(model.FilingType),
		Title:         model.Title,
		ContentText:   model.ContentText,
		ContentHTML:   model.ContentHTML,
		Status:        vo.FilingStatus(model.Status),
		AIGenerated:   model.AIGenerated,
		LegalDeadline: model.LegalDeadline,
		AgentName:     model.AgentName,
		ModelUsed:     model.ModelUsed,
		CreatedBy:     model.CreatedBy,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct filing entity: %w", err)
	}
	return entity, nil
}

func (m *FilingMapperImpl) ToModel(entity *filing.Filing) (*models.FilingModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.FilingModel{
		ID:            entity.ID(),
		SID:           entity.SID(),
		TenantCNPJ:    entity.TenantCNPJ(),
		CaseSID:       entity.CaseSID(),
		DocumentSID:   entity.DocumentSID(),
		FilingType:    entity.Type().String(),
		Title:         entity.Title(),
		ContentText:   entity.ContentText(),
		ContentHTML:   entity.ContentHTML(),
		Status:        entity.Status().String(),
		AIGenerated:   entity.IsAIGenerated(),
		LegalDeadline: entity.LegalDeadline(),
		AgentName:     entity.AgentName(),
		ModelUsed:     entity.ModelUsed(),
		CreatedBy:     entity.CreatedBy(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

func (m *FilingMapperImpl) ToEntities(models []*models.FilingModel) ([]*filing.Filing, error) {
	return mapper.MapSliceWithError(models, m.ToEntity)
}
