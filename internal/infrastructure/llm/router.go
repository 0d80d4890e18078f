// Package llm adapts the chat model providers to the LLMInvoker and
// DataExtractor ports.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/eino-contrib/jsonschema"
	"google.golang.org/genai"

	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/shared/config"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderClaude = "claude"

	defaultTimeout     = 120 * time.Second
	defaultMaxTokens   = 4000
	responseSchemaName = "resposta"
)

// ModelFactory builds a chat model for a provider and model name.
type ModelFactory func(ctx context.Context, provider, modelName string) (model.ToolCallingChatModel, error)

// Router sends each request to the provider owning the requested model and
// keeps one chat model per provider and model name.
type Router struct {
	cfg     config.LLMConfig
	factory ModelFactory
	logger  logger.Interface

	mu     sync.Mutex
	models map[string]model.ToolCallingChatModel
}

var _ services.LLMInvoker = (*Router)(nil)

func NewRouter(cfg config.LLMConfig, log logger.Interface) *Router {
	return NewRouterWithFactory(cfg, providerFactory(cfg), log)
}

func NewRouterWithFactory(cfg config.LLMConfig, factory ModelFactory, log logger.Interface) *Router {
	return &Router{
		cfg:     cfg,
		factory: factory,
		logger:  log,
		models:  make(map[string]model.ToolCallingChatModel),
	}
}

// ProviderFor maps a model name onto its provider by prefix.
func ProviderFor(modelName string) (string, bool) {
	m := strings.ToLower(strings.TrimSpace(modelName))
	switch {
	case strings.HasPrefix(m, "gpt-"), strings.HasPrefix(m, "o1"), strings.HasPrefix(m, "o3"), strings.HasPrefix(m, "o4"):
		return ProviderOpenAI, true
	case strings.HasPrefix(m, "gemini-"):
		return ProviderGemini, true
	case strings.HasPrefix(m, "claude-"):
		return ProviderClaude, true
	}
	return "", false
}

func (r *Router) Invoke(ctx context.Context, req services.LLMRequest) (*services.LLMResponse, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, fmt.Errorf("prompt is required")
	}

	modelName := req.Model
	if modelName == "" {
		modelName = r.cfg.DefaultModel
	}
	provider, ok := ProviderFor(modelName)
	if !ok {
		r.logger.Warnw("unknown model, using default", "model", modelName, "default", r.cfg.DefaultModel)
		modelName = r.cfg.DefaultModel
		if provider, ok = ProviderFor(modelName); !ok {
			return nil, fmt.Errorf("no provider for default model %s", modelName)
		}
	}

	chatModel, err := r.modelFor(ctx, provider, modelName)
	if err != nil {
		return nil, err
	}

	timeout := defaultTimeout
	if r.cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(r.cfg.TimeoutSeconds) * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	messages := make([]*schema.Message, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, schema.SystemMessage(req.SystemPrompt))
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	opts := []model.Option{model.WithMaxTokens(maxTokens)}
	if req.Temperature != nil {
		opts = append(opts, model.WithTemperature(*req.Temperature))
	}

	prompt := req.Prompt
	if req.Schema != nil {
		schemaOpts, native, err := SchemaOptions(provider, req.Schema)
		if err != nil {
			return nil, err
		}
		opts = append(opts, schemaOpts...)
		if !native {
			instruction, err := schemaInstruction(req.Schema)
			if err != nil {
				return nil, err
			}
			prompt = prompt + "\n\n" + instruction
		}
	}
	messages = append(messages, schema.UserMessage(prompt))

	start := time.Now()
	out, err := chatModel.Generate(ctx, messages, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s generate failed: %w", provider, err)
	}
	r.logger.Debugw("llm call finished",
		"provider", provider,
		"model", modelName,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	content := out.Content
	if req.Schema != nil {
		raw, err := ExtractJSON(content)
		if err != nil {
			return nil, fmt.Errorf("%s returned no valid JSON: %w", provider, err)
		}
		if err := Conforms(raw, req.Schema); err != nil {
			return nil, fmt.Errorf("%s reply does not match the response schema: %w", provider, err)
		}
		content = string(raw)
	}
	return &services.LLMResponse{Content: content, Model: modelName}, nil
}

func (r *Router) modelFor(ctx context.Context, provider, modelName string) (model.ToolCallingChatModel, error) {
	key := provider + ":" + modelName

	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.models[key]; ok {
		return m, nil
	}
	m, err := r.factory(ctx, provider, modelName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s model %s: %w", provider, modelName, err)
	}
	r.models[key] = m
	return m, nil
}

func providerFactory(cfg config.LLMConfig) ModelFactory {
	return func(ctx context.Context, provider, modelName string) (model.ToolCallingChatModel, error) {
		pc, ok := cfg.Providers[provider]
		if !ok || pc.APIKey == "" {
			return nil, fmt.Errorf("provider %s not configured", provider)
		}

		switch provider {
		case ProviderOpenAI:
			return openai.NewChatModel(ctx, &openai.ChatModelConfig{
				APIKey:  pc.APIKey,
				BaseURL: pc.BaseURL,
				Model:   modelName,
			})
		case ProviderGemini:
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  pc.APIKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to create gemini client: %w", err)
			}
			return gemini.NewChatModel(ctx, &gemini.Config{
				Client: client,
				Model:  modelName,
			})
		case ProviderClaude:
			var baseURL *string
			if pc.BaseURL != "" {
				baseURL = &pc.BaseURL
			}
			return claude.NewChatModel(ctx, &claude.Config{
				APIKey:    pc.APIKey,
				Model:     modelName,
				BaseURL:   baseURL,
				MaxTokens: defaultMaxTokens,
			})
		}
		return nil, fmt.Errorf("invalid provider: %s", provider)
	}
}

func schemaInstruction(s *services.Schema) (string, error) {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode response schema: %w", err)
	}
	return "Responda APENAS com um objeto JSON válido, sem texto adicional, que siga este JSON Schema:\n" + string(raw), nil
}

// SchemaOptions returns the call options that make the provider enforce s
// natively. native is false when the provider has no schema mode and the
// schema has to travel in the prompt.
func SchemaOptions(provider string, s *services.Schema) (opts []model.Option, native bool, err error) {
	switch provider {
	case ProviderOpenAI:
		return []model.Option{openai.WithExtraFields(map[string]any{
			"response_format": OpenAIResponseFormat(s),
		})}, true, nil
	case ProviderGemini:
		js, err := ToJSONSchema(s)
		if err != nil {
			return nil, false, err
		}
		return []model.Option{gemini.WithResponseJSONSchema(js)}, true, nil
	}
	return nil, false, nil
}

// OpenAIResponseFormat is the response_format body selecting JSON schema mode.
func OpenAIResponseFormat(s *services.Schema) map[string]any {
	return map[string]any{
		"type": "json_schema",
		"json_schema": map[string]any{
			"name":   responseSchemaName,
			"schema": s,
		},
	}
}

// ToJSONSchema converts the port schema into the JSON Schema type taken by
// the Gemini chat model.
func ToJSONSchema(s *services.Schema) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode response schema: %w", err)
	}
	var out jsonschema.Schema
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to convert response schema: %w", err)
	}
	return &out, nil
}
