package intake

import (
	"context"
	"strings"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/agent"
	agentvo "github.com/lexdoc-ai/lexdoc/internal/domain/agent/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/document"
	"github.com/lexdoc-ai/lexdoc/internal/domain/filing"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/shared/db"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

// FilingRenderer turns the generated markdown into the stored HTML.
type FilingRenderer interface {
	RenderFiling(text string) (string, error)
}

type GenerateFilingCommand struct {
	Session     *session.Context
	DocumentSID string
	AgentSID    *string
}

type GenerateFilingResult struct {
	Filing   *filing.Filing
	Document *document.Document
	// AlreadyGenerated is true when the document already had a filing and
	// nothing was generated.
	AlreadyGenerated bool
	Warnings         []Warning
}

// GenerateFilingUseCase drafts the filing suggested by a document analysis.
type GenerateFilingUseCase struct {
	docRepo    document.Repository
	filingRepo filing.Repository
	agentRepo  agent.Repository
	llm        services.LLMInvoker
	prompts    services.PromptBuilder
	renderer   FilingRenderer
	tx         db.Transactor
	metrics    *AgentMetrics
	auditor    Auditor
	logger     logger.Interface
}

func NewGenerateFilingUseCase(
	docRepo document.Repository,
	filingRepo filing.Repository,
	agentRepo agent.Repository,
	llm services.LLMInvoker,
	prompts services.PromptBuilder,
	renderer FilingRenderer,
	tx db.Transactor,
	metrics *AgentMetrics,
	auditor Auditor,
	logger logger.Interface,
) *GenerateFilingUseCase {
	return &GenerateFilingUseCase{
		docRepo:    docRepo,
		filingRepo: filingRepo,
		agentRepo:  agentRepo,
		llm:        llm,
		prompts:    prompts,
		renderer:   renderer,
		tx:         tx,
		metrics:    metrics,
		auditor:    auditor,
		logger:     logger,
	}
}

func (uc *GenerateFilingUseCase) Execute(ctx context.Context, cmd GenerateFilingCommand) (*GenerateFilingResult, error) {
	if err := cmd.Session.RequireTenant(); err != nil {
		return nil, err
	}
	sc := cmd.Session
	tenantCNPJ := sc.TenantCNPJ

	doc, err := uc.docRepo.GetBySID(ctx, tenantCNPJ, cmd.DocumentSID)
	if err != nil {
		uc.logger.Errorw("failed to load document", "document_sid", cmd.DocumentSID, "error", err)
		return nil, errors.NewInternalError("failed to load document")
	}
	if doc == nil {
		return nil, errors.NewNotFoundError("document not found", cmd.DocumentSID)
	}

	if doc.HasFiling() {
		existing, err := uc.filingRepo.GetBySID(ctx, tenantCNPJ, *doc.FilingSID())
		if err != nil {
			uc.logger.Errorw("failed to load existing filing", "filing_sid", *doc.FilingSID(), "error", err)
			return nil, errors.NewInternalError("failed to load filing")
		}
		if existing != nil {
			uc.logger.Infow("filing already generated for document",
				"document_sid", doc.SID(),
				"filing_sid", existing.SID(),
			)
			return &GenerateFilingResult{Filing: existing, Document: doc, AlreadyGenerated: true}, nil
		}
		doc.DetachFiling()
	}

	analysis, ok := doc.Analysis()
	if !ok {
		return nil, errors.NewValidationError("document has not been analysed")
	}
	filingType, suggested := analysis.SuggestedFilingType()
	if !suggested {
		return nil, errors.NewValidationError("the analysis does not suggest a filing", analysis.SuggestedFiling)
	}
	if !analysis.DocumentationSufficient {
		return nil, errors.NewValidationError("documentation is not sufficient to generate a filing",
			strings.Join(analysis.MissingDocuments, ", "))
	}

	ag, err := resolveAgent(ctx, uc.agentRepo, tenantCNPJ, cmd.AgentSID)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("executing generate filing use case",
		"document_sid", doc.SID(),
		"filing_type", filingType,
		"agent_sid", agentSID(ag),
	)

	prompt, err := uc.prompts.GenerationPrompt(services.GenerationPrompt{
		Persona:           persona(ag),
		FilingType:        filingType.String(),
		RecommendedAction: analysis.RecommendedAction,
		CaseSide:          analysis.CaseSide,
		Plaintiff:         analysis.Plaintiff,
		Defendant:         analysis.Defendant,
		ProcessNumber:     analysis.ProcessNumber,
		LegalGrounds:      analysis.LegalGrounds,
		Observations:      analysis.Observations,
		Tone:              tone(ag),
	})
	if err != nil {
		return nil, errors.NewInternalError("failed to build generation prompt", err.Error())
	}

	req := services.LLMRequest{Prompt: prompt}
	applyAgent(&req, ag)
	resp, err := uc.llm.Invoke(ctx, req)
	if err == nil && strings.TrimSpace(resp.Content) == "" {
		err = errors.NewUpstreamError("model returned an empty filing")
	}
	if err != nil {
		uc.logger.Errorw("filing generation failed", "document_sid", doc.SID(), "error", err)
		return nil, newWorkflowError(KindGenerationFailed, errors.NewUpstreamError("filing generation failed", err.Error()))
	}

	contentHTML, err := uc.renderer.RenderFiling(resp.Content)
	if err != nil {
		return nil, errors.NewInternalError("failed to render filing", err.Error())
	}

	deadline := filing.ComputeDeadline(doc.CreatedAt(), analysis.ResponseDaysOrDefault())
	f, err := filing.NewGeneratedFiling(filing.GeneratedParams{
		TenantCNPJ:        tenantCNPJ,
		CaseSID:           doc.CaseSID(),
		DocumentSID:       doc.SID(),
		Type:              filingType,
		RecommendedAction: analysis.RecommendedAction,
		ContentText:       resp.Content,
		ContentHTML:       contentHTML,
		LegalDeadline:     deadline,
		AgentName:         analyzedBy(ag),
		ModelUsed:         modelUsed(ag),
		CreatedBy:         sc.Email,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.filingRepo.Create(txCtx, f); err != nil {
			return err
		}
		if err := doc.AttachFiling(f.SID(), deadline); err != nil {
			return errors.NewConflictError(err.Error())
		}
		return uc.docRepo.Update(txCtx, doc)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist generated filing", "document_sid", doc.SID(), "error", err)
		return nil, err
	}

	result := &GenerateFilingResult{Filing: f, Document: doc}
	if ag != nil {
		if w := uc.metrics.recordBestEffort(ctx, tenantCNPJ, ag.SID(), agentvo.GenerationUsage()); w != nil {
			result.Warnings = append(result.Warnings, *w)
		}
	}

	uc.auditor.Audit(audit.Record{
		TenantCNPJ: tenantCNPJ,
		UserEmail:  sc.Email,
		UserName:   sc.Name,
		Action:     audit.ActionFilingGenerated,
		EntityType: "PecaProcessual",
		EntityID:   f.SID(),
		Success:    true,
		Details: map[string]any{
			"documento_id": doc.SID(),
			"tipo_peca":    filingType.String(),
			"prazo_legal":  deadline.Format("2006-01-02"),
		},
	})

	uc.logger.Infow("filing generated", "filing_sid", f.SID(), "document_sid", doc.SID())
	return result, nil
}

func tone(ag *agent.Agent) string {
	if ag == nil {
		return ""
	}
	return ag.Personality().Tone.String()
}
