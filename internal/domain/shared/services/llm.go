package services

import "context"

type LLMRequest struct {
	Model        string
	SystemPrompt string
	Prompt       string
	Temperature  *float32
	MaxTokens    int
	// Schema switches the call to structured JSON output.
	Schema *Schema
}

type LLMResponse struct {
	Content string
	Model   string
}

type LLMInvoker interface {
	Invoke(ctx context.Context, req LLMRequest) (*LLMResponse, error)
}
