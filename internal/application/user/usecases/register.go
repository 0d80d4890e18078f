package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/user/dto"
	"github.com/lexdoc-ai/lexdoc/internal/domain/user"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type RegisterCommand struct {
	Email    string
	Name     string
	Password string
}

// RegisterUseCase creates an account without an office. The user then
// onboards a tenant or requests access to one.
type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, hasher PasswordHasher, tokens TokenService, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{userRepo: userRepo, hasher: hasher, tokens: tokens, logger: logger}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.AuthDTO, error) {
	email, err := user.NormalizeEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := validatePassword(cmd.Password); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check existing user", "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}
	if exists {
		return nil, errors.NewConflictError("user with this email already exists", email)
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}
	u, err := user.NewUser(email, cmd.Name, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}

	uc.logger.Infow("user registered", "user_sid", u.SID())
	return issueTokens(u, uc.tokens, uc.logger)
}

func issueTokens(u *user.User, tokens TokenService, log logger.Interface) (*dto.AuthDTO, error) {
	pair, err := tokens.Generate(u.SID())
	if err != nil {
		log.Errorw("failed to issue tokens", "user_sid", u.SID(), "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}
	return &dto.AuthDTO{
		User:         dto.ToUserDTO(u),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
