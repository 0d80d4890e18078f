package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/filing/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/filing"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/filing/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type UpdateFilingCommand struct {
	Session   *session.Context
	FilingSID string
	Title     *string
	Content   *string
	Status    *string
}

// UpdateFilingUseCase applies a lawyer's review: edited content is
// re-rendered to HTML and status changes follow the review flow.
type UpdateFilingUseCase struct {
	filingRepo filing.Repository
	renderer   ContentRenderer
	auditor    Auditor
	logger     logger.Interface
}

func NewUpdateFilingUseCase(filingRepo filing.Repository, renderer ContentRenderer, auditor Auditor, logger logger.Interface) *UpdateFilingUseCase {
	return &UpdateFilingUseCase{filingRepo: filingRepo, renderer: renderer, auditor: auditor, logger: logger}
}

func (uc *UpdateFilingUseCase) Execute(ctx context.Context, cmd UpdateFilingCommand) (*dto.FilingDTO, error) {
	if err := cmd.Session.RequireTenant(); err != nil {
		return nil, err
	}
	if cmd.Title == nil && cmd.Content == nil && cmd.Status == nil {
		return nil, errors.NewValidationError("nothing to update")
	}

	f, err := loadFiling(ctx, uc.filingRepo, cmd.Session.TenantCNPJ, cmd.FilingSID, uc.logger)
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil || cmd.Content != nil {
		title, text, html := f.Title(), f.ContentText(), f.ContentHTML()
		if cmd.Title != nil {
			title = *cmd.Title
		}
		if cmd.Content != nil {
			text = *cmd.Content
			html, err = uc.renderer.RenderFiling(text)
			if err != nil {
				uc.logger.Errorw("failed to render filing", "filing_id", f.SID(), "error", err)
				return nil, errors.NewInternalError("failed to render filing content")
			}
		}
		if err := f.EditContent(title, text, html); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	approved := false
	if cmd.Status != nil {
		target, err := vo.NewFilingStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		approved = target == vo.FilingStatusApproved && f.Status() != target
		if err := f.ChangeStatus(target); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.filingRepo.Update(ctx, f); err != nil {
		uc.logger.Errorw("failed to update filing", "filing_id", f.SID(), "error", err)
		return nil, errors.NewInternalError("failed to update filing")
	}

	if approved {
		uc.auditor.Audit(audit.Record{
			TenantCNPJ: f.TenantCNPJ(),
			UserEmail:  cmd.Session.Email,
			UserName:   cmd.Session.Name,
			Action:     audit.ActionFilingApproved,
			EntityType: "PecaProcessual",
			EntityID:   f.SID(),
			Success:    true,
			Details:    map[string]any{"titulo": f.Title(), "tipo_peca": f.Type().String()},
		})
	}

	uc.logger.Infow("filing updated", "filing_id", f.SID(), "status", f.Status())
	return dto.ToFilingDTO(f), nil
}
