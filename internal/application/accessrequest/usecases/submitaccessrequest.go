package usecases

import (
	"context"
	"strings"

	"github.com/lexdoc-ai/lexdoc/internal/application/accessrequest/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/application/sidechannel"
	"github.com/lexdoc-ai/lexdoc/internal/domain/accessrequest"
	"github.com/lexdoc-ai/lexdoc/internal/domain/tenant"
	"github.com/lexdoc-ai/lexdoc/internal/domain/user"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type SubmitAccessRequestCommand struct {
	Session        *session.Context
	UserName       string
	CPF            string
	RequestedCargo string
	TenantCNPJ     string
	Phone          string
	OABNumber      string
	OABUF          string
	Message        string
}

// SubmitAccessRequestUseCase lets a signed-in user without an office ask to
// join an existing one.
type SubmitAccessRequestUseCase struct {
	requestRepo accessrequest.Repository
	tenantRepo  tenant.Repository
	userRepo    user.Repository
	mailer      *sidechannel.Mailer
	side        SideChannel
	logger      logger.Interface
}

func NewSubmitAccessRequestUseCase(
	requestRepo accessrequest.Repository,
	tenantRepo tenant.Repository,
	userRepo user.Repository,
	mailer *sidechannel.Mailer,
	side SideChannel,
	logger logger.Interface,
) *SubmitAccessRequestUseCase {
	return &SubmitAccessRequestUseCase{
		requestRepo: requestRepo,
		tenantRepo:  tenantRepo,
		userRepo:    userRepo,
		mailer:      mailer,
		side:        side,
		logger:      logger,
	}
}

func (uc *SubmitAccessRequestUseCase) Execute(ctx context.Context, cmd SubmitAccessRequestCommand) (*dto.AccessRequestDTO, error) {
	if cmd.Session == nil || cmd.Session.Email == "" {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if cmd.Session.HasTenant() {
		return nil, errors.NewConflictError("user already belongs to an office")
	}

	cargo, err := user.NewCargo(cmd.RequestedCargo)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	cnpj, err := tenant.NormalizeCNPJ(cmd.TenantCNPJ)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.tenantRepo.GetByCNPJ(ctx, cnpj)
	if err != nil {
		uc.logger.Errorw("failed to load tenant", "cnpj", cnpj, "error", err)
		return nil, errors.NewInternalError("failed to load office")
	}
	if t == nil {
		return nil, errors.NewNotFoundError("no office registered with this CNPJ", tenant.FormatCNPJ(cnpj))
	}

	pending, err := uc.requestRepo.ExistsPending(ctx, cmd.Session.Email, cnpj)
	if err != nil {
		uc.logger.Errorw("failed to check pending requests", "cnpj", cnpj, "error", err)
		return nil, errors.NewInternalError("failed to check pending requests")
	}
	if pending {
		return nil, errors.NewConflictError("a pending request for this office already exists")
	}

	name := strings.TrimSpace(cmd.UserName)
	if name == "" {
		name = cmd.Session.Name
	}
	r, err := accessrequest.NewAccessRequest(accessrequest.Submission{
		UserEmail:      cmd.Session.Email,
		UserName:       name,
		CPF:            cmd.CPF,
		RequestedCargo: cargo,
		TenantCNPJ:     cnpj,
		CompanyName:    t.TradeName(),
		Phone:          cmd.Phone,
		OABNumber:      cmd.OABNumber,
		OABUF:          cmd.OABUF,
		Message:        cmd.Message,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Create(ctx, r); err != nil {
		uc.logger.Errorw("failed to create access request", "cnpj", cnpj, "error", err)
		return nil, errors.NewInternalError("failed to submit access request")
	}

	for _, to := range uc.recipients(ctx, t) {
		uc.side.Email(uc.mailer.AccessRequested(to, t.TradeName(), r))
	}

	uc.logger.Infow("access request submitted", "request_id", r.SID(), "cnpj", cnpj)
	return dto.ToAccessRequestDTO(r), nil
}

// recipients is the office contact address, or the office admins when the
// office has none.
func (uc *SubmitAccessRequestUseCase) recipients(ctx context.Context, t *tenant.Tenant) []string {
	if t.ContactEmail() != "" {
		return []string{t.ContactEmail()}
	}
	users, err := uc.userRepo.ListByTenant(ctx, t.CNPJ())
	if err != nil {
		uc.logger.Warnw("failed to list office admins", "cnpj", t.CNPJ(), "error", err)
		return nil
	}
	var to []string
	for _, u := range users {
		if u.IsAdmin() {
			to = append(to, u.Email())
		}
	}
	return to
}
