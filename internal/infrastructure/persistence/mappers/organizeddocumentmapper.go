package mappers

import (
	"fmt"

	docvo "github.com/lexdoc-ai/lexdoc/internal/domain/document/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/domain/organization"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/organization/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/models"
	"github.com/lexdoc-ai/lexdoc/internal/shared/mapper"
)

type OrganizedDocumentMapper interface {
	ToEntity(model *models.OrganizedDocumentModel) (*organization.OrganizedDocument, error)
	ToModel(entity *organization.OrganizedDocument) (*models.OrganizedDocumentModel, error)
	ToEntities(models []*models.OrganizedDocumentModel) ([]*organization.OrganizedDocument, error)
}

type OrganizedDocumentMapperImpl struct{}

func NewOrganizedDocumentMapper() OrganizedDocumentMapper {
	return &OrganizedDocumentMapperImpl{}
}

func (m *OrganizedDocumentMapperImpl) ToEntity(model *models.OrganizedDocumentModel) (*organization.OrganizedDocument, error) {
	if model == nil {
		return nil, nil
	}

	var (
		separated []string
		keywords  []string
		parties   organization.Parties
		meta      organization.AIMetadata
	)
	if err := fromJSONColumn("separated_documents", model.SeparatedDocuments, &separated); err != nil {
		return nil, err
	}
	if err := fromJSONColumn("keywords", model.Keywords, &keywords); err != nil {
		return nil, err
	}
	if err := fromJSONColumn("parties", model.Parties, &parties); err != nil {
		return nil, err
	}
	if err := fromJSONColumn("ai_metadata", model.AIMetadata, &meta); err != nil {
		return nil, err
	}

	entity, err := organization.ReconstructOrganizedDocument(organization.OrganizedDocumentState{
		ID:                 model.ID,
		SID:                model.SID,
		TenantCNPJ:         model.TenantCNPJ,
		BatchID:            model.BatchID,
		OriginalName:       model.OriginalName,
		OriginalURL:        model.OriginalURL,
		OrganizedURL:       model.OrganizedURL,
		StorageKey:         model.StorageKey,
		DocumentType:       docvo.DocumentType(model.DocumentType),
		Sector:             vo.Sector(model.Sector),
		Status:             vo.OrganizationStatus(model.Status),
		PageCount:          model.PageCount,
		PagesReordered:     model.PagesReordered,
		SeparatedDocuments: separated,
		Parties:            parties,
		Keywords:           keywords,
		SuggestedName:      model.SuggestedName,
		SuggestedFolder:    model.SuggestedFolder,
		Observations:       model.Observations,
		ResponsibleAgent:   model.ResponsibleAgent,
		ProcessingSeconds:  model.ProcessingSeconds,
		AIMetadata:         meta,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct organized document entity: %w", err)
	}
	return entity, nil
}

func (m *OrganizedDocumentMapperImpl) ToModel(entity *organization.OrganizedDocument) (*models.OrganizedDocumentModel, error) {
	if entity == nil {
		return nil, nil
	}

	separated, err := toJSONColumn("separated_documents", entity.SeparatedDocuments())
	if err != nil {
		return nil, err
	}
	keywords, err := toJSONColumn("keywords", entity.Keywords())
	if err != nil {
		return nil, err
	}
	parties, err := toJSONColumn("parties", entity.Parties())
	if err != nil {
		return nil, err
	}
	meta, err := toJSONColumn("ai_metadata", entity.AIMetadata())
	if err != nil {
		return nil, err
	}

	return &models.OrganizedDocumentModel{
		ID:                 entity.ID(),
		SID:                entity.SID(),
		TenantCNPJ:         entity.TenantCNPJ(),
		BatchID:            entity.BatchID(),
		OriginalName:       entity.OriginalName(),
		OriginalURL:        entity.OriginalURL(),
		OrganizedURL:       entity.OrganizedURL(),
		StorageKey:         entity.StorageKey(),
		DocumentType:       entity.DocumentType().String(),
		Sector:             entity.Sector().String(),
		Status:             entity.Status().String(),
		PageCount:          entity.PageCount(),
		PagesReordered:     entity.PagesReordered(),
		SeparatedDocuments: separated,
		Parties:            parties,
		Keywords:           keywords,
		SuggestedName:      entity.SuggestedName(),
		SuggestedFolder:    entity.SuggestedFolder(),
		Observations:       entity.Observations(),
		ResponsibleAgent:   entity.ResponsibleAgent(),
		ProcessingSeconds:  entity.ProcessingSeconds(),
		AIMetadata:         meta,
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}, nil
}

func (m *OrganizedDocumentMapperImpl) ToEntities(models []*models.OrganizedDocumentModel) ([]*organization.OrganizedDocument, error) {
	return mapper.MapSliceWithError(models, m.ToEntity)
}
