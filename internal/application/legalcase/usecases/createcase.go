package usecases

import (
	"context"
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/application/legalcase/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/legalcase"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/legalcase/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type CreateCaseCommand struct {
	Session       *session.Context
	Title         string
	Client        string
	ProcessNumber string
	Area          string
	Status        string
	OpposingParty string
	ClaimValue    *float64
	NextDeadline  *time.Time
	Summary       string
}

// CreateCaseUseCase opens a case with the caller as responsible lawyer.
type CreateCaseUseCase struct {
	caseRepo legalcase.Repository
	auditor  Auditor
	logger   logger.Interface
}

func NewCreateCaseUseCase(caseRepo legalcase.Repository, auditor Auditor, logger logger.Interface) *CreateCaseUseCase {
	return &CreateCaseUseCase{caseRepo: caseRepo, auditor: auditor, logger: logger}
}

func (uc *CreateCaseUseCase) Execute(ctx context.Context, cmd CreateCaseCommand) (*dto.CaseDTO, error) {
	if err := cmd.Session.RequireTenant(); err != nil {
		return nil, err
	}

	c, err := legalcase.NewCase(legalcase.CaseParams{
		TenantCNPJ:        cmd.Session.TenantCNPJ,
		Title:             cmd.Title,
		Client:            cmd.Client,
		ProcessNumber:     cmd.ProcessNumber,
		Area:              vo.LegalArea(cmd.Area),
		Status:            vo.CaseStatus(cmd.Status),
		ResponsibleLawyer: cmd.Session.Email,
		OpposingParty:     cmd.OpposingParty,
		ClaimValue:        cmd.ClaimValue,
		NextDeadline:      cmd.NextDeadline,
		Summary:           cmd.Summary,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.caseRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create case", "cnpj", cmd.Session.TenantCNPJ, "error", err)
		return nil, errors.NewInternalError("failed to create case")
	}

	uc.auditor.Audit(audit.Record{
		TenantCNPJ: c.TenantCNPJ(),
		UserEmail:  cmd.Session.Email,
		UserName:   cmd.Session.Name,
		Action:     audit.ActionCaseCreated,
		EntityType: "Caso",
		EntityID:   c.SID(),
		Success:    true,
		Details: map[string]any{
			"titulo":  c.Title(),
			"cliente": c.Client(),
		},
	})

	uc.logger.Infow("case created", "case_id", c.SID(), "cnpj", c.TenantCNPJ())
	return dto.ToCaseDTO(c), nil
}
