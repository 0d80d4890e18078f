package usecases

import (
	"context"
	"strings"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/application/sidechannel"
	"github.com/lexdoc-ai/lexdoc/internal/application/user/dto"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/user"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, sc *session.Context) ([]*dto.UserDTO, error) {
	if err := sc.RequireTenant(); err != nil {
		return nil, err
	}
	users, err := uc.userRepo.ListByTenant(ctx, sc.TenantCNPJ)
	if err != nil {
		uc.logger.Errorw("failed to list users", "cnpj", sc.TenantCNPJ, "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}
	return dto.ToUserDTOs(users), nil
}

type CreateUserCommand struct {
	Session   *session.Context
	Email     string
	Name      string
	Password  string
	Cargo     string
	Phone     string
	OABNumber string
	OABUF     string
}

// CreateUserUseCase adds a user directly to the caller's office.
type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	mailer   *sidechannel.Mailer
	side     SideChannel
	logger   logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	mailer *sidechannel.Mailer,
	side SideChannel,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		mailer:   mailer,
		side:     side,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	if err := cmd.Session.RequireAdmin(); err != nil {
		return nil, err
	}

	email, err := user.NormalizeEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	cargo, err := user.NewCargo(cmd.Cargo)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := validatePassword(cmd.Password); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check existing user", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}
	if exists {
		return nil, errors.NewConflictError("user with this email already exists", email)
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}
	u, err := user.NewUser(email, cmd.Name, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	err = u.JoinTenant(user.Membership{
		TenantCNPJ: cmd.Session.TenantCNPJ,
		Cargo:      cargo,
		Phone:      strings.TrimSpace(cmd.Phone),
		OABNumber:  strings.TrimSpace(cmd.OABNumber),
		OABUF:      strings.TrimSpace(cmd.OABUF),
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	uc.side.Email(uc.mailer.UserWelcome(u.Email(), u.Name(), u.Cargo()))
	uc.side.Audit(audit.Record{
		TenantCNPJ: cmd.Session.TenantCNPJ,
		UserEmail:  cmd.Session.Email,
		UserName:   cmd.Session.Name,
		Action:     audit.ActionUserCreated,
		EntityType: "User",
		EntityID:   u.SID(),
		Success:    true,
		Details: map[string]any{
			"email": u.Email(),
			"cargo": u.Cargo().String(),
		},
	})

	uc.logger.Infow("user created", "user_sid", u.SID(), "cnpj", cmd.Session.TenantCNPJ, "cargo", u.Cargo())
	return dto.ToUserDTO(u), nil
}

type UpdateCargoCommand struct {
	Session *session.Context
	UserSID string
	Cargo   string
}

type UpdateCargoUseCase struct {
	userRepo user.Repository
	sessions SessionInvalidator
	logger   logger.Interface
}

func NewUpdateCargoUseCase(userRepo user.Repository, sessions SessionInvalidator, logger logger.Interface) *UpdateCargoUseCase {
	return &UpdateCargoUseCase{userRepo: userRepo, sessions: sessions, logger: logger}
}

func (uc *UpdateCargoUseCase) Execute(ctx context.Context, cmd UpdateCargoCommand) (*dto.UserDTO, error) {
	if err := cmd.Session.RequireAdmin(); err != nil {
		return nil, err
	}
	if cmd.UserSID == cmd.Session.UserSID {
		return nil, errors.NewValidationError("admins cannot change their own cargo")
	}
	cargo, err := user.NewCargo(cmd.Cargo)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	u, err := loadMember(ctx, uc.userRepo, cmd.Session, cmd.UserSID, uc.logger)
	if err != nil {
		return nil, err
	}
	if err := u.ChangeCargo(cargo); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update cargo", "user_sid", u.SID(), "error", err)
		return nil, errors.NewInternalError("failed to update user")
	}
	uc.sessions.Invalidate(ctx, u.SID())

	uc.logger.Infow("user cargo changed", "user_sid", u.SID(), "cargo", cargo, "by", cmd.Session.Email)
	return dto.ToUserDTO(u), nil
}

type DeleteUserCommand struct {
	Session *session.Context
	UserSID string
}

type DeleteUserUseCase struct {
	userRepo user.Repository
	sessions SessionInvalidator
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, sessions SessionInvalidator, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo, sessions: sessions, logger: logger}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Session.RequireAdmin(); err != nil {
		return err
	}
	if cmd.UserSID == cmd.Session.UserSID {
		return errors.NewValidationError("admins cannot delete themselves")
	}

	u, err := loadMember(ctx, uc.userRepo, cmd.Session, cmd.UserSID, uc.logger)
	if err != nil {
		return err
	}
	if err := uc.userRepo.Delete(ctx, cmd.Session.TenantCNPJ, u.SID()); err != nil {
		uc.logger.Errorw("failed to delete user", "user_sid", u.SID(), "error", err)
		return errors.NewInternalError("failed to delete user")
	}
	uc.sessions.Invalidate(ctx, u.SID())

	uc.logger.Infow("user deleted", "user_sid", u.SID(), "by", cmd.Session.Email)
	return nil
}

func loadMember(ctx context.Context, repo user.Repository, sc *session.Context, sid string, log logger.Interface) (*user.User, error) {
	u, err := repo.GetBySID(ctx, sc.TenantCNPJ, sid)
	if err != nil {
		log.Errorw("failed to load user", "user_sid", sid, "error", err)
		return nil, errors.NewInternalError("failed to load user")
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found", sid)
	}
	return u, nil
}
