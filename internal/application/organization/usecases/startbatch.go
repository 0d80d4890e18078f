package usecases

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/application/intake"
	"github.com/lexdoc-ai/lexdoc/internal/application/organization/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/agent"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/organization"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/goroutine"
	"github.com/lexdoc-ai/lexdoc/internal/shared/id"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/textutil"
)

const (
	classificationTextLimit = 5000
	defaultBatchLimit       = 20
)

type StartBatchCommand struct {
	Session *session.Context
	Files   []intake.UploadedFile
}

// StartBatchUseCase validates the files, records a running batch and
// organizes the files one by one in the background.
type StartBatchUseCase struct {
	storage    services.FileStorage
	extractor  services.DataExtractor
	llm        services.LLMInvoker
	prompts    services.PromptBuilder
	repo       organization.Repository
	batches    organization.BatchStore
	agentRepo  agent.Repository
	policy     *intake.UploadPolicy
	batchLimit int
	auditor    Auditor
	logger     logger.Interface

	// spawn runs the batch; tests replace it to run inline.
	spawn func(name string, fn func())
}

func NewStartBatchUseCase(
	storage services.FileStorage,
	extractor services.DataExtractor,
	llm services.LLMInvoker,
	prompts services.PromptBuilder,
	repo organization.Repository,
	batches organization.BatchStore,
	agentRepo agent.Repository,
	policy *intake.UploadPolicy,
	batchLimit int,
	auditor Auditor,
	logger logger.Interface,
) *StartBatchUseCase {
	if batchLimit <= 0 {
		batchLimit = defaultBatchLimit
	}
	uc := &StartBatchUseCase{
		storage:    storage,
		extractor:  extractor,
		llm:        llm,
		prompts:    prompts,
		repo:       repo,
		batches:    batches,
		agentRepo:  agentRepo,
		policy:     policy,
		batchLimit: batchLimit,
		auditor:    auditor,
		logger:     logger,
	}
	uc.spawn = func(name string, fn func()) {
		goroutine.SafeGo(uc.logger, name, fn)
	}
	return uc
}

func (uc *StartBatchUseCase) Execute(ctx context.Context, cmd StartBatchCommand) (*dto.BatchDTO, error) {
	if err := cmd.Session.RequireTenant(); err != nil {
		return nil, err
	}
	if len(cmd.Files) == 0 {
		return nil, errors.NewValidationError("at least one file is required")
	}
	if len(cmd.Files) > uc.batchLimit {
		return nil, errors.NewValidationError(fmt.Sprintf("a batch accepts at most %d files", uc.batchLimit))
	}

	files := make([]batchFile, 0, len(cmd.Files))
	for _, f := range cmd.Files {
		contentType, err := uc.policy.Validate(f)
		if err != nil {
			return nil, err
		}
		files = append(files, batchFile{UploadedFile: f, contentType: contentType})
	}

	batchID, err := id.NewBatchID()
	if err != nil {
		return nil, errors.NewInternalError("failed to generate batch ID")
	}
	sc := *cmd.Session
	batch := organization.NewBatch(batchID, sc.TenantCNPJ, len(files))
	if err := uc.batches.Save(ctx, batch); err != nil {
		uc.logger.Errorw("failed to record batch", "batch_id", batchID, "error", err)
		return nil, errors.NewInternalError("failed to start organization batch")
	}

	uc.logger.Infow("organization batch started",
		"batch_id", batchID,
		"tenant", sc.TenantCNPJ,
		"files", len(files),
	)

	started := dto.ToBatchDTO(batch)
	runCtx := context.WithoutCancel(ctx)
	uc.spawn("organization-batch-"+batchID, func() {
		uc.run(runCtx, &sc, batch, files)
	})
	return started, nil
}

type batchFile struct {
	intake.UploadedFile
	contentType string
}

func (uc *StartBatchUseCase) run(ctx context.Context, sc *session.Context, batch *organization.Batch, files []batchFile) {
	agentName := uc.responsibleAgent(ctx, sc.TenantCNPJ)

	for _, f := range files {
		docSID, err := uc.organizeFile(ctx, sc, batch.ID, agentName, f)
		if err != nil {
			uc.logger.Errorw("organization batch stopped",
				"batch_id", batch.ID,
				"file_name", f.FileName,
				"processed", batch.Processed,
				"error", err,
			)
			batch.Fail(fmt.Sprintf("%s: %v", f.FileName, err))
			uc.saveProgress(ctx, batch)
			uc.finish(sc, batch)
			return
		}
		batch.Advance(docSID)
		uc.saveProgress(ctx, batch)
	}

	batch.Complete()
	uc.saveProgress(ctx, batch)
	uc.logger.Infow("organization batch completed", "batch_id", batch.ID, "documents", batch.Processed)
	uc.finish(sc, batch)
}

func (uc *StartBatchUseCase) organizeFile(ctx context.Context, sc *session.Context, batchID, agentName string, f batchFile) (string, error) {
	started := time.Now()

	stored, err := uc.storage.Upload(ctx, services.UploadInput{
		Key:         intake.StorageKey("organizados", sc.TenantCNPJ, f.FileName),
		FileName:    f.FileName,
		ContentType: f.contentType,
		Size:        int64(len(f.Data)),
		Body:        bytes.NewReader(f.Data),
	})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	doc, err := organization.NewOrganizedDocument(organization.IntakeParams{
		TenantCNPJ:       sc.TenantCNPJ,
		BatchID:          batchID,
		FileName:         f.FileName,
		FileURL:          stored.URL,
		StorageKey:       stored.Key,
		ResponsibleAgent: agentName,
	})
	if err != nil {
		return "", err
	}
	if err := uc.repo.Create(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to create organized document: %w", err)
	}

	classification, pages, err := uc.classify(ctx, f)
	if err != nil {
		doc.MarkFailed(err.Error())
		if uerr := uc.repo.Update(ctx, doc); uerr != nil {
			uc.logger.Warnw("failed to mark organized document as failed", "sid", doc.SID(), "error", uerr)
		}
		return "", err
	}

	doc.Organize(classification, pages, time.Since(started))
	if err := uc.repo.Update(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to save organized document: %w", err)
	}

	uc.logger.Debugw("file organized",
		"sid", doc.SID(),
		"setor_destino", doc.Sector(),
		"tipo_documento", doc.DocumentType(),
	)
	return doc.SID(), nil
}

func (uc *StartBatchUseCase) classify(ctx context.Context, f batchFile) (organization.Classification, int, error) {
	var c organization.Classification

	raw, err := uc.extractor.Extract(ctx, services.ExtractionInput{
		FileName: f.FileName,
		MIMEType: f.contentType,
		Data:     f.Data,
	}, PageExtractionSchema())
	if err != nil {
		return c, 0, fmt.Errorf("extraction failed: %w", err)
	}
	var extracted struct {
		Text  string `json:"texto_completo"`
		Pages int    `json:"numero_paginas"`
	}
	if err := json.Unmarshal(raw, &extracted); err != nil {
		return c, 0, fmt.Errorf("extraction returned invalid data: %w", err)
	}
	if strings.TrimSpace(extracted.Text) == "" {
		return c, 0, fmt.Errorf("extraction returned no text")
	}

	prompt, err := uc.prompts.OrganizationPrompt(textutil.Truncate(extracted.Text, classificationTextLimit))
	if err != nil {
		return c, 0, err
	}
	resp, err := uc.llm.Invoke(ctx, services.LLMRequest{Prompt: prompt, Schema: ClassificationSchema()})
	if err != nil {
		return c, 0, fmt.Errorf("classification failed: %w", err)
	}
	if err := json.Unmarshal([]byte(resp.Content), &c); err != nil {
		return c, 0, fmt.Errorf("classification returned invalid data: %w", err)
	}
	return c, extracted.Pages, nil
}

func (uc *StartBatchUseCase) responsibleAgent(ctx context.Context, tenantCNPJ string) string {
	ag, err := uc.agentRepo.FirstActive(ctx, tenantCNPJ)
	if err != nil {
		uc.logger.Warnw("failed to load active agent, using default name", "tenant", tenantCNPJ, "error", err)
		return organization.DefaultAgentName
	}
	if ag == nil {
		return organization.DefaultAgentName
	}
	return ag.Name()
}

func (uc *StartBatchUseCase) saveProgress(ctx context.Context, batch *organization.Batch) {
	if err := uc.batches.Save(ctx, batch); err != nil {
		uc.logger.Warnw("failed to save batch progress", "batch_id", batch.ID, "error", err)
	}
}

func (uc *StartBatchUseCase) finish(sc *session.Context, batch *organization.Batch) {
	uc.auditor.Audit(audit.Record{
		TenantCNPJ: sc.TenantCNPJ,
		UserEmail:  sc.Email,
		UserName:   sc.Name,
		Action:     audit.ActionOrganizationFinished,
		EntityType: "LoteOrganizacao",
		EntityID:   batch.ID,
		Success:    batch.Error == "",
		Details: map[string]any{
			"total":       batch.Total,
			"processados": batch.Processed,
			"erro":        batch.Error,
		},
	})
}
