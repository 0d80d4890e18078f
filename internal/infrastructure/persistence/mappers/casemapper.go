package mappers

import (
	"fmt"

	"github.com/lexdoc-ai/lexdoc/internal/domain/legalcase"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/legalcase/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/models"
	"github.com/lexdoc-ai/lexdoc/internal/shared/mapper"
)

type CaseMapper interface {
	ToEntity(model *models.CaseModel) (*legalcase.Case, error)
	ToModel(entity *legalcase.Case) (*models.CaseModel, error)
	ToEntities(models []*models.CaseModel) ([]*legalcase.Case, error)
}

type CaseMapperImpl struct{}

func NewCaseMapper() CaseMapper {
	return &CaseMapperImpl{}
}

func (m *CaseMapperImpl) ToEntity(model *models.CaseModel) (*legalcase.Case, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := legalcase.ReconstructCase(legalcase.CaseState{
		ID:                model.ID,
		SID:               model.SID,
		TenantCNPJ:        model.TenantCNPJ,
		Title:             model.Title,
		Client:            model.Client,
		ProcessNumber:     model.ProcessNumber,
		Area:              vo.LegalArea(model.Area),
		Status:            vo.CaseStatus(model.Status),
		ResponsibleLawyer: model.ResponsibleLawyer,
		OpposingParty:     model.OpposingParty,
		ClaimValue:        model.ClaimValue,
		NextDeadline:      model.NextDeadline,
		Summary:           model.Summary,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct case entity: %w", err)
	}
	return entity, nil
}

func (m *CaseMapperImpl) ToModel(entity *legalcase.Case) (*models.CaseModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.CaseModel{
		ID:                entity.ID(),
		SID:               entity.SID(),
		TenantCNPJ:        entity.TenantCNPJ(),
		Title:             entity.Title(),
		Client:            entity.Client(),
		ProcessNumber:     entity.ProcessNumber(),
		Area:              entity.Area().String(),
		Status:            entity.Status().String(),
		ResponsibleLawyer: entity.ResponsibleLawyer(),
		OpposingParty:     entity.OpposingParty(),
		ClaimValue:        entity.ClaimValue(),
		NextDeadline:      entity.NextDeadline(),
		Summary:           entity.Summary(),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}, nil
}

func (m *CaseMapperImpl) ToEntities(models []*models.CaseModel) ([]*legalcase.Case, error) {
	return mapper.MapSliceWithError(models, m.ToEntity)
}
