package mappers

import (
	"fmt"

	"github.com/lexdoc-ai/lexdoc/internal/domain/document"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/document/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/models"
	"github.com/lexdoc-ai/lexdoc/internal/shared/mapper"
)

type DocumentMapper interface {
	ToEntity(model *models.DocumentModel) (*document.Document, error)
	ToModel(entity *document.Document) (*models.DocumentModel, error)
	ToEntities(models []*models.DocumentModel) ([]*document.Document, error)
}

type DocumentMapperImpl struct{}

func NewDocumentMapper() DocumentMapper {
	return &DocumentMapperImpl{}
}

func (m *DocumentMapperImpl) ToEntity(model *models.DocumentModel) (*document.Document, error) {
	if model == nil {
		return nil, nil
	}

	var extracted *document.ExtractedContext
	if len(model.Context) > 0 && string(model.Context) != "null" {
		extracted = &document.ExtractedContext{}
		if err := fromJSONColumn("context", model.Context, extracted); err != nil {
			return nil, err
		}
	}

	entity, err := document.ReconstructDocument(document.DocumentState{
		ID:              model.ID,
		SID:             model.SID,
		TenantCNPJ:      model.TenantCNPJ,
		CaseSID:         model.CaseSID,
		FileName:        model.FileName,
		FileURL:         model.FileURL,
		StorageKey:      model.StorageKey,
		Format:          vo.Format(model.Format),
		SizeBytes:       model.SizeBytes,
		PageCount:       model.PageCount,
		DocumentType:    vo.DocumentType(model.DocumentType),
		ExtractedText:   model.ExtractedText,
		Context:         extracted,
		AnalysisRaw:     model.AnalysisRaw,
		SuggestedFiling: model.SuggestedFiling,
		Status:          vo.ProcessingStatus(model.Status),
		FilingSID:       model.FilingSID,
		UploadedBy:      model.UploadedBy,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct document entity: %w", err)
	}
	return entity, nil
}

func (m *DocumentMapperImpl) ToModel(entity *document.Document) (*models.DocumentModel, error) {
	if entity == nil {
		return nil, nil
	}

	model := &models.DocumentModel{
		ID:              entity.ID(),
		SID:             entity.SID(),
		TenantCNPJ:      entity.TenantCNPJ(),
		CaseSID:         entity.CaseSID(),
		FileName:        entity.FileName(),
		FileURL:         entity.FileURL(),
		StorageKey:      entity.StorageKey(),
		Format:          entity.Format().String(),
		SizeBytes:       entity.SizeBytes(),
		PageCount:       entity.PageCount(),
		DocumentType:    entity.DocumentType().String(),
		ExtractedText:   entity.ExtractedText(),
		AnalysisRaw:     entity.AnalysisRaw(),
		SuggestedFiling: entity.SuggestedFiling(),
		Status:          entity.Status().String(),
		FilingSID:       entity.FilingSID(),
		UploadedBy:      entity.UploadedBy(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}

	if ctx := entity.Context(); ctx != nil {
		col, err := toJSONColumn("context", ctx)
		if err != nil {
			return nil, err
		}
		model.Context = col
	}
	return model, nil
}

func (m *DocumentMapperImpl) ToEntities(models []*models.DocumentModel) ([]*document.Document, error) {
	return mapper.MapSliceWithError(models, m.ToEntity)
}
