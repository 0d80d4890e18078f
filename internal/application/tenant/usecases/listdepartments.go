package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/application/tenant/dto"
	"github.com/lexdoc-ai/lexdoc/internal/domain/tenant"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type ListDepartmentsUseCase struct {
	deptRepo tenant.DepartmentRepository
	logger   logger.Interface
}

func NewListDepartmentsUseCase(deptRepo tenant.DepartmentRepository, logger logger.Interface) *ListDepartmentsUseCase {
	return &ListDepartmentsUseCase{deptRepo: deptRepo, logger: logger}
}

func (uc *ListDepartmentsUseCase) Execute(ctx context.Context, sc *session.Context) ([]*dto.DepartmentDTO, error) {
	if err := sc.RequireTenant(); err != nil {
		return nil, err
	}
	depts, err := uc.deptRepo.ListByTenant(ctx, sc.TenantCNPJ)
	if err != nil {
		uc.logger.Errorw("failed to list departments", "cnpj", sc.TenantCNPJ, "error", err)
		return nil, errors.NewInternalError("failed to list departments")
	}
	return dto.ToDepartmentDTOs(depts), nil
}
