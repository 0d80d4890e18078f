package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/agent"
	agentvo "github.com/lexdoc-ai/lexdoc/internal/domain/agent/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/document"
	"github.com/lexdoc-ai/lexdoc/internal/domain/legalcase"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/textutil"
)

// Auditor queues audit entries on the side channel.
type Auditor interface {
	Audit(r audit.Record)
}

type AnalyzeDocumentCommand struct {
	Session  *session.Context
	File     UploadedFile
	CaseSID  *string
	AgentSID *string
}

type AnalyzeDocumentResult struct {
	Document          *document.Document
	Analysis          document.Analysis
	CanGenerateFiling bool
	Degraded          bool
	Warnings          []Warning
}

// AnalyzeDocumentUseCase uploads a file, extracts its text and stores the
// strategic analysis. It never generates a filing.
type AnalyzeDocumentUseCase struct {
	storage   services.FileStorage
	extractor services.DataExtractor
	llm       services.LLMInvoker
	prompts   services.PromptBuilder
	docRepo   document.Repository
	caseRepo  legalcase.Repository
	agentRepo agent.Repository
	metrics   *AgentMetrics
	policy    *UploadPolicy
	auditor   Auditor
	logger    logger.Interface
}

func NewAnalyzeDocumentUseCase(
	storage services.FileStorage,
	extractor services.DataExtractor,
	llm services.LLMInvoker,
	prompts services.PromptBuilder,
	docRepo document.Repository,
	caseRepo legalcase.Repository,
	agentRepo agent.Repository,
	metrics *AgentMetrics,
	policy *UploadPolicy,
	auditor Auditor,
	logger logger.Interface,
) *AnalyzeDocumentUseCase {
	return &AnalyzeDocumentUseCase{
		storage:   storage,
		extractor: extractor,
		llm:       llm,
		prompts:   prompts,
		docRepo:   docRepo,
		caseRepo:  caseRepo,
		agentRepo: agentRepo,
		metrics:   metrics,
		policy:    policy,
		auditor:   auditor,
		logger:    logger,
	}
}

func (uc *AnalyzeDocumentUseCase) Execute(ctx context.Context, cmd AnalyzeDocumentCommand) (*AnalyzeDocumentResult, error) {
	if err := cmd.Session.RequireTenant(); err != nil {
		return nil, err
	}
	sc := cmd.Session
	tenantCNPJ := sc.TenantCNPJ

	contentType, err := uc.policy.Validate(cmd.File)
	if err != nil {
		return nil, err
	}

	ag, err := resolveAgent(ctx, uc.agentRepo, tenantCNPJ, cmd.AgentSID)
	if err != nil {
		return nil, err
	}
	if cmd.CaseSID != nil && *cmd.CaseSID != "" {
		c, err := uc.caseRepo.GetBySID(ctx, tenantCNPJ, *cmd.CaseSID)
		if err != nil {
			uc.logger.Errorw("failed to load case", "case_sid", *cmd.CaseSID, "error", err)
			return nil, errors.NewInternalError("failed to load case")
		}
		if c == nil {
			return nil, errors.NewNotFoundError("case not found", *cmd.CaseSID)
		}
	} else {
		cmd.CaseSID = nil
	}

	uc.logger.Infow("executing analyze document use case",
		"tenant", tenantCNPJ,
		"file_name", cmd.File.FileName,
		"agent_sid", agentSID(ag),
	)

	size := cmd.File.Size
	if size == 0 {
		size = int64(len(cmd.File.Data))
	}

	stored, err := uc.storage.Upload(ctx, services.UploadInput{
		Key:         StorageKey("documentos", tenantCNPJ, cmd.File.FileName),
		FileName:    cmd.File.FileName,
		ContentType: contentType,
		Size:        size,
		Body:        bytes.NewReader(cmd.File.Data),
	})
	if err != nil {
		uc.logger.Errorw("failed to upload document", "file_name", cmd.File.FileName, "error", err)
		return nil, newWorkflowError(KindUploadFailed, errors.NewUpstreamError("failed to upload file", err.Error()))
	}

	doc, err := document.NewDocument(document.UploadParams{
		TenantCNPJ: tenantCNPJ,
		CaseSID:    cmd.CaseSID,
		FileName:   cmd.File.FileName,
		FileURL:    stored.URL,
		StorageKey: stored.Key,
		SizeBytes:  size,
		UploadedBy: sc.Email,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.docRepo.Create(ctx, doc); err != nil {
		uc.logger.Errorw("failed to create document", "error", err)
		return nil, err
	}

	uc.auditor.Audit(audit.Record{
		TenantCNPJ: tenantCNPJ,
		UserEmail:  sc.Email,
		UserName:   sc.Name,
		Action:     audit.ActionDocumentUploaded,
		EntityType: "Documento",
		EntityID:   doc.SID(),
		Success:    true,
		Details:    map[string]any{"nome_arquivo": doc.FileName(), "tamanho_bytes": size},
	})

	result := &AnalyzeDocumentResult{Document: doc}

	text, extractErr := ExtractText(ctx, uc.extractor, cmd.File, contentType)
	if extractErr != nil {
		uc.logger.Warnw("text extraction failed, continuing with placeholder",
			"document_sid", doc.SID(),
			"error", extractErr,
		)
		text = document.ExtractionFallbackText
		result.Degraded = true
		result.Warnings = append(result.Warnings, newWarning(KindExtractionDegraded, extractErr))
	}

	uc.auditor.Audit(audit.Record{
		TenantCNPJ: tenantCNPJ,
		UserEmail:  sc.Email,
		UserName:   sc.Name,
		Action:     audit.ActionAnalysisStarted,
		EntityType: "Documento",
		EntityID:   doc.SID(),
		Success:    true,
		Details:    map[string]any{"agente": analyzedBy(ag), "degradada": result.Degraded},
	})

	analysis, err := uc.analyze(ctx, ag, doc, text)
	if err != nil {
		uc.logger.Errorw("strategic analysis failed", "document_sid", doc.SID(), "error", err)
		doc.MarkFailed()
		if uerr := uc.docRepo.Update(ctx, doc); uerr != nil {
			uc.logger.Warnw("failed to mark document as failed", "document_sid", doc.SID(), "error", uerr)
		}
		return nil, newWorkflowError(KindAnalysisFailed, errors.NewUpstreamError("strategic analysis failed", err.Error()))
	}

	if ag != nil {
		if w := uc.metrics.recordBestEffort(ctx, tenantCNPJ, ag.SID(), agentvo.AnalysisUsage()); w != nil {
			result.Warnings = append(result.Warnings, *w)
		}
	}

	if err := doc.RecordAnalysis(text, analysis, analyzedBy(ag), modelUsed(ag), result.Degraded); err != nil {
		return nil, errors.NewInternalError("failed to record analysis", err.Error())
	}
	if err := uc.docRepo.Update(ctx, doc); err != nil {
		uc.logger.Errorw("failed to persist analysis", "document_sid", doc.SID(), "error", err)
		return nil, err
	}

	recorded, _ := doc.Analysis()
	result.Analysis = recorded
	result.CanGenerateFiling = recorded.CanGenerateFiling()

	uc.logger.Infow("document analysed",
		"document_sid", doc.SID(),
		"tipo_documento", doc.DocumentType(),
		"pode_gerar_peca", result.CanGenerateFiling,
		"warnings", len(result.Warnings),
	)
	return result, nil
}

// ExtractText reads the full text of f through the extractor.
func ExtractText(ctx context.Context, extractor services.DataExtractor, f UploadedFile, contentType string) (string, error) {
	raw, err := extractor.Extract(ctx, services.ExtractionInput{
		FileName: f.FileName,
		MIMEType: contentType,
		Data:     f.Data,
	}, ExtractionSchema())
	if err != nil {
		return "", err
	}
	var out extractedText
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Text) == "" {
		return "", errors.NewUpstreamError("extractor returned no text")
	}
	return out.Text, nil
}

func (uc *AnalyzeDocumentUseCase) analyze(ctx context.Context, ag *agent.Agent, doc *document.Document, text string) (document.Analysis, error) {
	var analysis document.Analysis

	prompt, err := uc.prompts.AnalysisPrompt(services.AnalysisPrompt{
		Persona: persona(ag),
		Format:  doc.Format().String(),
		Text:    textutil.Truncate(text, analysisTextLimit),
	})
	if err != nil {
		return analysis, err
	}

	req := services.LLMRequest{Prompt: prompt, Schema: AnalysisSchema()}
	applyAgent(&req, ag)

	resp, err := uc.llm.Invoke(ctx, req)
	if err != nil {
		return analysis, err
	}
	if err := json.Unmarshal([]byte(resp.Content), &analysis); err != nil {
		return analysis, err
	}
	return analysis, nil
}

func resolveAgent(ctx context.Context, repo agent.Repository, tenantCNPJ string, sid *string) (*agent.Agent, error) {
	if sid == nil || *sid == "" {
		return nil, nil
	}
	ag, err := repo.GetBySID(ctx, tenantCNPJ, *sid)
	if err != nil {
		return nil, errors.NewInternalError("failed to load agent")
	}
	if ag == nil {
		return nil, errors.NewNotFoundError("agent not found", *sid)
	}
	return ag, nil
}

func applyAgent(req *services.LLMRequest, ag *agent.Agent) {
	if ag == nil {
		return
	}
	temp := float32(ag.Temperature())
	req.Model = ag.Model()
	req.Temperature = &temp
	req.MaxTokens = ag.MaxTokens()
}

func persona(ag *agent.Agent) string {
	if ag == nil {
		return ""
	}
	return ag.Instructions()
}

func analyzedBy(ag *agent.Agent) string {
	if ag == nil {
		return document.DefaultAgentName
	}
	return ag.Name()
}

func modelUsed(ag *agent.Agent) string {
	if ag == nil {
		return document.DefaultModelName
	}
	return ag.Model()
}

func agentSID(ag *agent.Agent) string {
	if ag == nil {
		return ""
	}
	return ag.SID()
}
