package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	casedto "github.com/lexdoc-ai/lexdoc/internal/application/legalcase/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/document"
	"github.com/lexdoc-ai/lexdoc/internal/domain/filing"
	"github.com/lexdoc-ai/lexdoc/internal/domain/legalcase"
	casevo "github.com/lexdoc-ai/lexdoc/internal/domain/legalcase/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/shared/biztime"
	"github.com/lexdoc-ai/lexdoc/internal/shared/db"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type CreateCaseFromFilingCommand struct {
	Session   *session.Context
	FilingSID string
	Title     string
	Client    string
	Area      string
}

// CreateCaseFromFilingUseCase opens a case prefilled from the analysis of the
// filing's origin document and links both the filing and the document to it.
type CreateCaseFromFilingUseCase struct {
	filingRepo filing.Repository
	docRepo    document.Repository
	caseRepo   legalcase.Repository
	tx         db.Transactor
	auditor    Auditor
	logger     logger.Interface
}

func NewCreateCaseFromFilingUseCase(
	filingRepo filing.Repository,
	docRepo document.Repository,
	caseRepo legalcase.Repository,
	tx db.Transactor,
	auditor Auditor,
	logger logger.Interface,
) *CreateCaseFromFilingUseCase {
	return &CreateCaseFromFilingUseCase{
		filingRepo: filingRepo,
		docRepo:    docRepo,
		caseRepo:   caseRepo,
		tx:         tx,
		auditor:    auditor,
		logger:     logger,
	}
}

func (uc *CreateCaseFromFilingUseCase) Execute(ctx context.Context, cmd CreateCaseFromFilingCommand) (*casedto.CaseDTO, error) {
	if err := cmd.Session.RequireTenant(); err != nil {
		return nil, err
	}
	tenantCNPJ := cmd.Session.TenantCNPJ

	f, err := loadFiling(ctx, uc.filingRepo, tenantCNPJ, cmd.FilingSID, uc.logger)
	if err != nil {
		return nil, err
	}

	var origin *document.Document
	if docSID := f.DocumentSID(); docSID != nil && *docSID != "" {
		origin, err = uc.docRepo.GetBySID(ctx, tenantCNPJ, *docSID)
		if err != nil {
			uc.logger.Errorw("failed to load origin document", "document_id", *docSID, "error", err)
			return nil, errors.NewInternalError("failed to load origin document")
		}
	}

	params := legalcase.CaseParams{
		TenantCNPJ:        tenantCNPJ,
		Title:             cmd.Title,
		Client:            cmd.Client,
		Area:              casevo.LegalArea(cmd.Area),
		Status:            casevo.CaseStatusInAnalysis,
		ResponsibleLawyer: cmd.Session.Email,
		NextDeadline:      f.LegalDeadline(),
		Summary:           fmt.Sprintf("Caso criado automaticamente a partir da peça processual: %s", f.Title()),
	}
	if origin != nil && origin.Context() != nil {
		ec := origin.Context()
		params.ProcessNumber = ec.ProcessNumber
		params.OpposingParty = ec.Defendant
		if strings.TrimSpace(params.OpposingParty) == "" {
			params.OpposingParty = ec.Plaintiff
		}
		params.ClaimValue = ec.ClaimValue
		if d, ok := parseResponseDeadline(ec.ResponseDeadline); ok {
			params.NextDeadline = &d
		}
	}

	c, err := legalcase.NewCase(params)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.caseRepo.Create(txCtx, c); err != nil {
			return fmt.Errorf("failed to create case: %w", err)
		}
		f.LinkCase(c.SID())
		if err := uc.filingRepo.Update(txCtx, f); err != nil {
			return fmt.Errorf("failed to link filing: %w", err)
		}
		if origin != nil {
			origin.LinkCase(c.SID())
			if err := uc.docRepo.Update(txCtx, origin); err != nil {
				return fmt.Errorf("failed to link origin document: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create case from filing", "filing_id", f.SID(), "error", err)
		return nil, errors.NewInternalError("failed to create case from filing")
	}

	uc.auditor.Audit(audit.Record{
		TenantCNPJ: tenantCNPJ,
		UserEmail:  cmd.Session.Email,
		UserName:   cmd.Session.Name,
		Action:     audit.ActionCaseCreated,
		EntityType: "Caso",
		EntityID:   c.SID(),
		Success:    true,
		Details: map[string]any{
			"titulo":    c.Title(),
			"cliente":   c.Client(),
			"peca_id":   f.SID(),
			"documento": origin != nil,
		},
	})

	uc.logger.Infow("case created from filing", "case_id", c.SID(), "filing_id", f.SID())
	return casedto.ToCaseDTO(c), nil
}

// parseResponseDeadline reads the yyyy-mm-dd deadline stored with the
// analysis, as midnight in the business timezone.
func parseResponseDeadline(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", s, biztime.Location())
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}
