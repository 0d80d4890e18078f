package usecases

import (
	"context"
	"fmt"

	"github.com/lexdoc-ai/lexdoc/internal/application/accessrequest/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/application/sidechannel"
	"github.com/lexdoc-ai/lexdoc/internal/domain/accessrequest"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/user"
	"github.com/lexdoc-ai/lexdoc/internal/shared/db"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type RespondAccessRequestCommand struct {
	Session   *session.Context
	RequestID string
	// Reason is required when rejecting.
	Reason string
}

// ApproveAccessRequestUseCase applies the requested cargo to the requester
// and marks the request approved in one transaction.
type ApproveAccessRequestUseCase struct {
	requestRepo accessrequest.Repository
	userRepo    user.Repository
	tx          db.Transactor
	sessions    SessionInvalidator
	mailer      *sidechannel.Mailer
	side        SideChannel
	logger      logger.Interface
}

func NewApproveAccessRequestUseCase(
	requestRepo accessrequest.Repository,
	userRepo user.Repository,
	tx db.Transactor,
	sessions SessionInvalidator,
	mailer *sidechannel.Mailer,
	side SideChannel,
	logger logger.Interface,
) *ApproveAccessRequestUseCase {
	return &ApproveAccessRequestUseCase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		tx:          tx,
		sessions:    sessions,
		mailer:      mailer,
		side:        side,
		logger:      logger,
	}
}

func (uc *ApproveAccessRequestUseCase) Execute(ctx context.Context, cmd RespondAccessRequestCommand) (*dto.AccessRequestDTO, error) {
	if err := cmd.Session.RequireAdmin(); err != nil {
		return nil, err
	}
	r, err := loadPending(ctx, uc.requestRepo, cmd, uc.logger)
	if err != nil {
		return nil, err
	}

	requester, err := uc.userRepo.GetByEmail(ctx, r.UserEmail())
	if err != nil {
		uc.logger.Errorw("failed to load requester", "request_id", r.SID(), "error", err)
		return nil, errors.NewInternalError("failed to load requester")
	}
	if requester == nil {
		return nil, errors.NewNotFoundError("requesting user not found", r.UserEmail())
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := requester.JoinTenant(r.Membership()); err != nil {
			return errors.NewConflictError(err.Error())
		}
		if err := r.Approve(cmd.Session.Email); err != nil {
			return errors.NewConflictError(err.Error())
		}
		if err := uc.userRepo.Update(txCtx, requester); err != nil {
			return fmt.Errorf("failed to update requester: %w", err)
		}
		if err := uc.requestRepo.Update(txCtx, r); err != nil {
			return fmt.Errorf("failed to update access request: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to approve access request", "request_id", r.SID(), "error", err)
		return nil, errors.NewInternalError("failed to approve access request")
	}

	uc.sessions.Invalidate(ctx, requester.SID())
	uc.side.Email(uc.mailer.AccessApproved(r))
	uc.side.Audit(audit.Record{
		TenantCNPJ: r.TenantCNPJ(),
		UserEmail:  cmd.Session.Email,
		UserName:   cmd.Session.Name,
		Action:     audit.ActionAccessApproved,
		EntityType: "SolicitacaoAcesso",
		EntityID:   r.SID(),
		Success:    true,
		Details: map[string]any{
			"usuario_email": r.UserEmail(),
			"cargo":         r.RequestedCargo().String(),
		},
	})

	uc.logger.Infow("access request approved", "request_id", r.SID(), "user", requester.SID())
	return dto.ToAccessRequestDTO(r), nil
}

type RejectAccessRequestUseCase struct {
	requestRepo accessrequest.Repository
	mailer      *sidechannel.Mailer
	side        SideChannel
	logger      logger.Interface
}

func NewRejectAccessRequestUseCase(
	requestRepo accessrequest.Repository,
	mailer *sidechannel.Mailer,
	side SideChannel,
	logger logger.Interface,
) *RejectAccessRequestUseCase {
	return &RejectAccessRequestUseCase{
		requestRepo: requestRepo,
		mailer:      mailer,
		side:        side,
		logger:      logger,
	}
}

func (uc *RejectAccessRequestUseCase) Execute(ctx context.Context, cmd RespondAccessRequestCommand) (*dto.AccessRequestDTO, error) {
	if err := cmd.Session.RequireAdmin(); err != nil {
		return nil, err
	}
	r, err := loadPending(ctx, uc.requestRepo, cmd, uc.logger)
	if err != nil {
		return nil, err
	}

	if err := r.Reject(cmd.Session.Email, cmd.Reason); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.requestRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to reject access request", "request_id", r.SID(), "error", err)
		return nil, errors.NewInternalError("failed to reject access request")
	}

	uc.side.Email(uc.mailer.AccessRejected(r))
	uc.side.Audit(audit.Record{
		TenantCNPJ: r.TenantCNPJ(),
		UserEmail:  cmd.Session.Email,
		UserName:   cmd.Session.Name,
		Action:     audit.ActionAccessRejected,
		EntityType: "SolicitacaoAcesso",
		EntityID:   r.SID(),
		Success:    true,
		Details: map[string]any{
			"usuario_email": r.UserEmail(),
			"motivo":        r.RejectionReason(),
		},
	})

	uc.logger.Infow("access request rejected", "request_id", r.SID())
	return dto.ToAccessRequestDTO(r), nil
}

func loadPending(ctx context.Context, repo accessrequest.Repository, cmd RespondAccessRequestCommand, log logger.Interface) (*accessrequest.AccessRequest, error) {
	r, err := repo.GetBySID(ctx, cmd.Session.TenantCNPJ, cmd.RequestID)
	if err != nil {
		log.Errorw("failed to load access request", "request_id", cmd.RequestID, "error", err)
		return nil, errors.NewInternalError("failed to load access request")
	}
	if r == nil {
		return nil, errors.NewNotFoundError("access request not found", cmd.RequestID)
	}
	if r.Status() != accessrequest.StatusPending {
		return nil, errors.NewConflictError(fmt.Sprintf("access request already %s", r.Status()))
	}
	return r, nil
}
