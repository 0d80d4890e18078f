package mappers

import (
	"fmt"

	"github.com/lexdoc-ai/lexdoc/internal/domain/user"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/models"
	"github.com/lexdoc-ai/lexdoc/internal/shared/mapper"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := user.ReconstructUser(user.UserState{
		ID:           model.ID,
		SID:          model.SID,
		Email:        model.Email,
		Name:         model.Name,
		PasswordHash: model.PasswordHash,
		TenantCNPJ:   model.TenantCNPJ,
		Cargo:        user.Cargo(model.Cargo),
		Phone:        model.Phone,
		OABNumber:    model.OABNumber,
		OABUF:        model.OABUF,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}
	return entity, nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		Email:        entity.Email(),
		Name:         entity.Name(),
		PasswordHash: entity.PasswordHash(),
		TenantCNPJ:   entity.TenantCNPJ(),
		Cargo:        entity.Cargo().String(),
		Phone:        entity.Phone(),
		OABNumber:    entity.OABNumber(),
		OABUF:        entity.OABUF(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

func (m *UserMapperImpl) ToEntities(models []*models.UserModel) ([]*user.User, error) {
	return mapper.MapSliceWithError(models, m.ToEntity)
}
