package usecases

import (
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/agent/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/intake"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/agent"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/textutil"
)

const (
	testRunTextLimit  = 2000
	testRunConfidence = 0.85
)

type TestAgentCommand struct {
	Session  *session.Context
	AgentSID string
	File     intake.UploadedFile
}

// TestAgentUseCase runs an agent's instructions over a sample file without
// storing anything or touching the agent's counters.
type TestAgentUseCase struct {
	agentRepo agent.Repository
	extractor services.DataExtractor
	llm       services.LLMInvoker
	prompts   services.PromptBuilder
	policy    *intake.UploadPolicy
	logger    logger.Interface
}

func NewTestAgentUseCase(
	agentRepo agent.Repository,
	extractor services.DataExtractor,
	llm services.LLMInvoker,
	prompts services.PromptBuilder,
	policy *intake.UploadPolicy,
	logger logger.Interface,
) *TestAgentUseCase {
	return &TestAgentUseCase{
		agentRepo: agentRepo,
		extractor: extractor,
		llm:       llm,
		prompts:   prompts,
		policy:    policy,
		logger:    logger,
	}
}

func (uc *TestAgentUseCase) Execute(ctx context.Context, cmd TestAgentCommand) (*dto.TestRunDTO, error) {
	if err := cmd.Session.RequireTenant(); err != nil {
		return nil, err
	}
	a, err := loadAgent(ctx, uc.agentRepo, cmd.Session.TenantCNPJ, cmd.AgentSID, uc.logger)
	if err != nil {
		return nil, err
	}

	contentType, err := uc.policy.Validate(cmd.File)
	if err != nil {
		return nil, err
	}

	text, err := intake.ExtractText(ctx, uc.extractor, cmd.File, contentType)
	if err != nil {
		uc.logger.Warnw("agent test extraction failed", "agent_id", a.SID(), "error", err)
		return nil, errors.NewUpstreamError("failed to extract text from file", err.Error())
	}

	prompt, err := uc.prompts.AgentTestPrompt(a.Instructions(), textutil.Truncate(text, testRunTextLimit))
	if err != nil {
		uc.logger.Errorw("failed to render agent test prompt", "agent_id", a.SID(), "error", err)
		return nil, errors.NewInternalError("failed to build prompt")
	}

	temp := float32(a.Temperature())
	resp, err := uc.llm.Invoke(ctx, services.LLMRequest{
		Model:       a.Model(),
		Prompt:      prompt,
		Temperature: &temp,
		MaxTokens:   a.MaxTokens(),
	})
	if err != nil {
		uc.logger.Warnw("agent test invocation failed", "agent_id", a.SID(), "error", err)
		return nil, errors.NewUpstreamError("model invocation failed", err.Error())
	}

	model := resp.Model
	if model == "" {
		model = a.Model()
	}
	uc.logger.Infow("agent test run finished", "agent_id", a.SID(), "model", model, "text_chars", len(text))
	return &dto.TestRunDTO{
		ExtractedText: text,
		Response:      resp.Content,
		Confidence:    testRunConfidence,
		Model:         model,
	}, nil
}
