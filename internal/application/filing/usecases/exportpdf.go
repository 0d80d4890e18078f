package usecases

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/filing"
	"github.com/lexdoc-ai/lexdoc/internal/domain/legalcase"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/domain/tenant"
	"github.com/lexdoc-ai/lexdoc/internal/shared/biztime"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type ExportFilingPDFQuery struct {
	Session   *session.Context
	FilingSID string
}

type ExportFilingPDFResult struct {
	FileName string
	Content  []byte
}

type ExportFilingPDFUseCase struct {
	filingRepo filing.Repository
	caseRepo   legalcase.Repository
	tenantRepo tenant.Repository
	exporter   services.FilingExporter
	logger     logger.Interface
}

func NewExportFilingPDFUseCase(
	filingRepo filing.Repository,
	caseRepo legalcase.Repository,
	tenantRepo tenant.Repository,
	exporter services.FilingExporter,
	logger logger.Interface,
) *ExportFilingPDFUseCase {
	return &ExportFilingPDFUseCase{
		filingRepo: filingRepo,
		caseRepo:   caseRepo,
		tenantRepo: tenantRepo,
		exporter:   exporter,
		logger:     logger,
	}
}

func (uc *ExportFilingPDFUseCase) Execute(ctx context.Context, query ExportFilingPDFQuery) (*ExportFilingPDFResult, error) {
	if err := query.Session.RequireTenant(); err != nil {
		return nil, err
	}
	tenantCNPJ := query.Session.TenantCNPJ

	f, err := loadFiling(ctx, uc.filingRepo, tenantCNPJ, query.FilingSID, uc.logger)
	if err != nil {
		return nil, err
	}

	printable := services.PrintableFiling{
		Title:         f.Title(),
		Heading:       f.Type().Heading(),
		Body:          f.ContentText(),
		LegalDeadline: f.LegalDeadline(),
		GeneratedAt:   biztime.NowUTC(),
	}

	// Office and case details only decorate the header.
	if t, err := uc.tenantRepo.GetByCNPJ(ctx, tenantCNPJ); err != nil {
		uc.logger.Warnw("failed to load tenant for export", "cnpj", tenantCNPJ, "error", err)
	} else if t != nil {
		printable.OfficeName = t.TradeName()
	}
	if caseSID := f.CaseSID(); caseSID != nil {
		if c, err := uc.caseRepo.GetBySID(ctx, tenantCNPJ, *caseSID); err != nil {
			uc.logger.Warnw("failed to load case for export", "case_id", *caseSID, "error", err)
		} else if c != nil {
			printable.ProcessNumber = c.ProcessNumber()
		}
	}

	content, err := uc.exporter.ExportPDF(ctx, printable)
	if err != nil {
		uc.logger.Errorw("failed to export filing", "filing_id", f.SID(), "error", err)
		return nil, errors.NewInternalError("failed to export filing")
	}

	uc.logger.Infow("filing exported", "filing_id", f.SID(), "bytes", len(content))
	return &ExportFilingPDFResult{FileName: pdfFileName(f), Content: content}, nil
}

var unsafeFileChars = regexp.MustCompile(`[^\p{L}\p{N}._-]+`)

func pdfFileName(f *filing.Filing) string {
	name := strings.Trim(unsafeFileChars.ReplaceAllString(f.Title(), "_"), "_")
	if name == "" {
		name = f.SID()
	}
	return fmt.Sprintf("%s.pdf", name)
}
