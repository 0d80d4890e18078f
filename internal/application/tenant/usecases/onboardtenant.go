package usecases

import (
	"context"
	"fmt"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/application/sidechannel"
	"github.com/lexdoc-ai/lexdoc/internal/application/tenant/dto"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/tenant"
	"github.com/lexdoc-ai/lexdoc/internal/domain/user"
	"github.com/lexdoc-ai/lexdoc/internal/shared/db"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type OnboardTenantCommand struct {
	Session      *session.Context
	CNPJ         string
	CompanyName  string
	Address      string
	Phone        string
	ContactEmail string
}

type OnboardTenantResult struct {
	Tenant      *dto.TenantDTO
	Departments []*dto.DepartmentDTO
}

// OnboardTenantUseCase registers a new office and makes the caller its admin.
type OnboardTenantUseCase struct {
	tenantRepo tenant.Repository
	deptRepo   tenant.DepartmentRepository
	userRepo   user.Repository
	tx         db.Transactor
	sessions   SessionInvalidator
	mailer     *sidechannel.Mailer
	side       SideChannel
	logger     logger.Interface
}

func NewOnboardTenantUseCase(
	tenantRepo tenant.Repository,
	deptRepo tenant.DepartmentRepository,
	userRepo user.Repository,
	tx db.Transactor,
	sessions SessionInvalidator,
	mailer *sidechannel.Mailer,
	side SideChannel,
	logger logger.Interface,
) *OnboardTenantUseCase {
	return &OnboardTenantUseCase{
		tenantRepo: tenantRepo,
		deptRepo:   deptRepo,
		userRepo:   userRepo,
		tx:         tx,
		sessions:   sessions,
		mailer:     mailer,
		side:       side,
		logger:     logger,
	}
}

func (uc *OnboardTenantUseCase) Execute(ctx context.Context, cmd OnboardTenantCommand) (*OnboardTenantResult, error) {
	if cmd.Session == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if cmd.Session.HasTenant() {
		return nil, errors.NewConflictError("user already belongs to an office", cmd.Session.TenantCNPJ)
	}

	cnpj, err := tenant.NormalizeCNPJ(cmd.CNPJ)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.tenantRepo.ExistsByCNPJ(ctx, cnpj)
	if err != nil {
		uc.logger.Errorw("failed to check tenant existence", "cnpj", cnpj, "error", err)
		return nil, errors.NewInternalError("failed to check office registration")
	}
	if exists {
		return nil, errors.NewConflictError("CNPJ already registered", tenant.FormatCNPJ(cnpj))
	}

	t, err := tenant.NewTenant(cnpj, cmd.CompanyName, cmd.Address, cmd.Phone, cmd.ContactEmail)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	admin, err := uc.userRepo.GetByUserSID(ctx, cmd.Session.UserSID)
	if err != nil {
		uc.logger.Errorw("failed to load caller", "user_sid", cmd.Session.UserSID, "error", err)
		return nil, errors.NewInternalError("failed to load user")
	}
	if admin == nil {
		return nil, errors.NewUnauthorizedError("user no longer exists")
	}

	var departments []*tenant.Department
	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.tenantRepo.Create(txCtx, t); err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		if err := admin.JoinTenant(user.Membership{TenantCNPJ: t.CNPJ(), Cargo: user.CargoAdmin}); err != nil {
			return errors.NewConflictError(err.Error())
		}
		if err := uc.userRepo.Update(txCtx, admin); err != nil {
			return fmt.Errorf("failed to promote user: %w", err)
		}

		for _, tpl := range tenant.DefaultDepartments() {
			d, err := tenant.NewDepartment(t.CNPJ(), t.Sigla(), tpl)
			if err != nil {
				return err
			}
			if err := uc.deptRepo.Create(txCtx, d); err != nil {
				return fmt.Errorf("failed to create department %s: %w", tpl.Name, err)
			}
			departments = append(departments, d)
		}
		return nil
	})
	if err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to onboard tenant", "cnpj", cnpj, "error", err)
		return nil, errors.NewInternalError("failed to register office")
	}

	uc.sessions.Invalidate(ctx, admin.SID())
	uc.side.Email(uc.mailer.TenantWelcome(admin.Email(), admin.Name(), t))
	uc.side.Audit(audit.Record{
		TenantCNPJ: t.CNPJ(),
		UserEmail:  admin.Email(),
		UserName:   admin.Name(),
		Action:     audit.ActionTenantRegistered,
		EntityType: "Empresa",
		EntityID:   t.CNPJ(),
		Success:    true,
		Details: map[string]any{
			"nome_fantasia": t.TradeName(),
			"sigla":         t.Sigla(),
			"departamentos": len(departments),
		},
	})

	uc.logger.Infow("tenant onboarded", "cnpj", t.CNPJ(), "sigla", t.Sigla(), "admin", admin.SID())

	return &OnboardTenantResult{
		Tenant:      dto.ToTenantDTO(t),
		Departments: dto.ToDepartmentDTOs(departments),
	}, nil
}
