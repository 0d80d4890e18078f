package handlers

import (
	"context"

	auditdto "github.com/lexdoc-ai/lexdoc/internal/application/audit/dto"
	auditusecases "github.com/lexdoc-ai/lexdoc/internal/application/audit/usecases"
	dashboarddto "github.com/lexdoc-ai/lexdoc/internal/application/dashboard/dto"
	dashboardusecases "github.com/lexdoc-ai/lexdoc/internal/application/dashboard/usecases"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	userdto "github.com/lexdoc-ai/lexdoc/internal/application/user/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/user/usecases"
)

// Use case interfaces for the root handlers - enables unit testing with mocks.

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*userdto.AuthDTO, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*userdto.AuthDTO, error)
}

type refreshTokenUseCase interface {
	Execute(ctx context.Context, refreshToken string) (*usecases.TokenPair, error)
}

type getMeUseCase interface {
	Execute(ctx context.Context, sc *session.Context) (*userdto.UserDTO, error)
}

type updateProfileUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProfileCommand) (*userdto.UserDTO, error)
}

type getDashboardUseCase interface {
	Execute(ctx context.Context, query dashboardusecases.GetDashboardQuery) (*dashboarddto.DashboardDTO, error)
}

type listAuditLogsUseCase interface {
	Execute(ctx context.Context, query auditusecases.ListAuditLogsQuery) ([]*auditdto.AuditLogDTO, error)
}
