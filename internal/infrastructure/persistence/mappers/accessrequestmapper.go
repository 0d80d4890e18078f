package mappers

import (
	"fmt"

	"github.com/lexdoc-ai/lexdoc/internal/domain/accessrequest"
	"github.com/lexdoc-ai/lexdoc/internal/domain/user"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/models"
	"github.com/lexdoc-ai/lexdoc/internal/shared/mapper"
)

type AccessRequestMapper interface {
	ToEntity(model *models.AccessRequestModel) (*accessrequest.AccessRequest, error)
	ToModel(entity *accessrequest.AccessRequest) (*models.AccessRequestModel, error)
	ToEntities(models []*models.AccessRequestModel) ([]*accessrequest.AccessRequest, error)
}

type AccessRequestMapperImpl struct{}

func NewAccessRequestMapper() AccessRequestMapper {
	return &AccessRequestMapperImpl{}
}

func (m *AccessRequestMapperImpl) ToEntity(model *models.AccessRequestModel) (*accessrequest.AccessRequest, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := accessrequest.ReconstructAccessRequest(accessrequest.AccessRequestState{
		ID:              model.ID,
		SID:             model.SID,
		UserEmail:       model.UserEmail,
		UserName:        model.UserName,
		CPF:             model.CPF,
		RequestedCargo:  user.Cargo(model.RequestedCargo),
		TenantCNPJ:      model.TenantCNPJ,
		CompanyName:     model.CompanyName,
		Phone:           model.Phone,
		OABNumber:       model.OABNumber,
		OABUF:           model.OABUF,
		Message:         model.Message,
		Status:          accessrequest.Status(model.Status),
		RespondedAt:     model.RespondedAt,
		RespondedBy:     model.RespondedBy,
		RejectionReason: model.RejectionReason,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct access request entity: %w", err)
	}
	return entity, nil
}

func (m *AccessRequestMapperImpl) ToModel(entity *accessrequest.AccessRequest) (*models.AccessRequestModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.AccessRequestModel{
		ID:              entity.ID(),
		SID:             entity.SID(),
		UserEmail:       entity.UserEmail(),
		UserName:        entity.UserName(),
		CPF:             entity.CPF(),
		RequestedCargo:  entity.RequestedCargo().String(),
		TenantCNPJ:      entity.TenantCNPJ(),
		CompanyName:     entity.CompanyName(),
		Phone:           entity.Phone(),
		OABNumber:       entity.OABNumber(),
		OABUF:           entity.OABUF(),
		Message:         entity.Message(),
		Status:          entity.Status().String(),
		RespondedAt:     entity.RespondedAt(),
		RespondedBy:     entity.RespondedBy(),
		RejectionReason: entity.RejectionReason(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}, nil
}

func (m *AccessRequestMapperImpl) ToEntities(models []*models.AccessRequestModel) ([]*accessrequest.AccessRequest, error) {
	return mapper.MapSliceWithError(models, m.ToEntity)
}
