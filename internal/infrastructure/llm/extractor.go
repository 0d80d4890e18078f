package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/shared/config"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

const extractionInstruction = "Extraia o conteúdo do arquivo anexado e responda com um JSON que siga o schema da resposta. " +
	"Transcreva o texto integral do documento, incluindo textos de imagens, carimbos e assinaturas legíveis."

// contentGenerator is the slice of *genai.Models the extractor needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiExtractor reads uploaded files with a multimodal Gemini model and
// returns JSON constrained by the requested schema.
type GeminiExtractor struct {
	models  contentGenerator
	model   string
	timeout time.Duration
	logger  logger.Interface
}

var _ services.DataExtractor = (*GeminiExtractor)(nil)

func NewGeminiExtractor(ctx context.Context, cfg config.LLMConfig, log logger.Interface) (*GeminiExtractor, error) {
	pc, ok := cfg.Providers[ProviderGemini]
	if !ok || pc.APIKey == "" {
		return nil, fmt.Errorf("provider %s not configured", ProviderGemini)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  pc.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return newGeminiExtractor(client.Models, cfg, log), nil
}

func newGeminiExtractor(models contentGenerator, cfg config.LLMConfig, log logger.Interface) *GeminiExtractor {
	modelName := cfg.ExtractionModel
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &GeminiExtractor{
		models:  models,
		model:   modelName,
		timeout: timeout,
		logger:  log,
	}
}

func (e *GeminiExtractor) Extract(ctx context.Context, in services.ExtractionInput, schema *services.Schema) (json.RawMessage, error) {
	if len(in.Data) == 0 {
		return nil, fmt.Errorf("file %s is empty", in.FileName)
	}
	if schema == nil {
		return nil, fmt.Errorf("extraction schema is required")
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(in.Data, in.MIMEType),
			genai.NewPartFromText(extractionInstruction),
		}, genai.RoleUser),
	}
	resp, err := e.models.GenerateContent(ctx, e.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   ToGenaiSchema(schema),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini extraction failed: %w", err)
	}

	raw, err := ExtractJSON(resp.Text())
	if err != nil {
		return nil, fmt.Errorf("gemini extraction returned no valid JSON: %w", err)
	}
	e.logger.Debugw("file extracted", "file", in.FileName, "mime", in.MIMEType, "bytes", len(in.Data))
	return raw, nil
}

// ToGenaiSchema converts the port schema into Gemini's response schema.
func ToGenaiSchema(s *services.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        genaiType(s.Type),
		Description: s.Description,
		Enum:        s.Enum,
		Required:    s.Required,
		Items:       ToGenaiSchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, p := range s.Properties {
			out.Properties[name] = ToGenaiSchema(p)
		}
	}
	return out
}

func genaiType(t services.SchemaType) genai.Type {
	switch services.SchemaType(strings.ToLower(string(t))) {
	case services.SchemaString:
		return genai.TypeString
	case services.SchemaInteger:
		return genai.TypeInteger
	case services.SchemaNumber:
		return genai.TypeNumber
	case services.SchemaBoolean:
		return genai.TypeBoolean
	case services.SchemaArray:
		return genai.TypeArray
	default:
		return genai.TypeObject
	}
}
