package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/application/user/dto"
	"github.com/lexdoc-ai/lexdoc/internal/domain/user"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type GetMeUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetMeUseCase(userRepo user.Repository, logger logger.Interface) *GetMeUseCase {
	return &GetMeUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetMeUseCase) Execute(ctx context.Context, sc *session.Context) (*dto.UserDTO, error) {
	u, err := loadSelf(ctx, uc.userRepo, sc, uc.logger)
	if err != nil {
		return nil, err
	}
	return dto.ToUserDTO(u), nil
}

type UpdateProfileCommand struct {
	Session   *session.Context
	Name      string
	Phone     string
	OABNumber string
	OABUF     string
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	sessions SessionInvalidator
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, sessions SessionInvalidator, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo, sessions: sessions, logger: logger}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error) {
	u, err := loadSelf(ctx, uc.userRepo, cmd.Session, uc.logger)
	if err != nil {
		return nil, err
	}
	if err := u.UpdateProfile(cmd.Name, cmd.Phone, cmd.OABNumber, cmd.OABUF); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update profile", "user_sid", u.SID(), "error", err)
		return nil, errors.NewInternalError("failed to update profile")
	}
	uc.sessions.Invalidate(ctx, u.SID())
	return dto.ToUserDTO(u), nil
}

func loadSelf(ctx context.Context, repo user.Repository, sc *session.Context, log logger.Interface) (*user.User, error) {
	if sc == nil || sc.UserSID == "" {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	u, err := repo.GetByUserSID(ctx, sc.UserSID)
	if err != nil {
		log.Errorw("failed to load user", "user_sid", sc.UserSID, "error", err)
		return nil, errors.NewInternalError("failed to load user")
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError("user no longer exists")
	}
	return u, nil
}
