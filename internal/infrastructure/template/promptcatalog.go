package template

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

//go:embed prompts/prompts.yaml
var defaultPrompts []byte

type promptDefaults struct {
	AnalysisPersona   string `yaml:"analysis_persona"`
	GenerationPersona string `yaml:"generation_persona"`
	Tone              string `yaml:"tone"`
}

type promptFile struct {
	Defaults     promptDefaults `yaml:"defaults"`
	Analysis     string         `yaml:"analysis"`
	Generation   string         `yaml:"generation"`
	Organization string         `yaml:"organization"`
	AgentTest    string         `yaml:"agent_test"`
}

// PromptCatalog renders the LLM prompts. The embedded catalogue is always
// loaded; an override file may replace individual entries.
type PromptCatalog struct {
	defaults     promptDefaults
	analysis     *template.Template
	generation   *template.Template
	organization *template.Template
	agentTest    *template.Template
}

var _ services.PromptBuilder = (*PromptCatalog)(nil)

var promptFuncs = template.FuncMap{
	"upper": strings.ToUpper,
}

// NewPromptCatalog loads the embedded prompts and applies overridePath when
// it is set and exists.
func NewPromptCatalog(overridePath string, log logger.Interface) (*PromptCatalog, error) {
	var file promptFile
	if err := yaml.Unmarshal(defaultPrompts, &file); err != nil {
		return nil, fmt.Errorf("failed to parse embedded prompts: %w", err)
	}

	if overridePath != "" {
		content, err := os.ReadFile(overridePath)
		switch {
		case os.IsNotExist(err):
			log.Warnw("prompt override file not found, using embedded prompts", "path", overridePath)
		case err != nil:
			return nil, fmt.Errorf("failed to read prompt override %s: %w", overridePath, err)
		default:
			var override promptFile
			if err := yaml.Unmarshal(content, &override); err != nil {
				return nil, fmt.Errorf("failed to parse prompt override %s: %w", overridePath, err)
			}
			file.merge(override)
			log.Infow("loaded prompt overrides", "path", overridePath, "size", len(content))
		}
	}

	return file.compile()
}

func (f *promptFile) merge(o promptFile) {
	if o.Defaults.AnalysisPersona != "" {
		f.Defaults.AnalysisPersona = o.Defaults.AnalysisPersona
	}
	if o.Defaults.GenerationPersona != "" {
		f.Defaults.GenerationPersona = o.Defaults.GenerationPersona
	}
	if o.Defaults.Tone != "" {
		f.Defaults.Tone = o.Defaults.Tone
	}
	if o.Analysis != "" {
		f.Analysis = o.Analysis
	}
	if o.Generation != "" {
		f.Generation = o.Generation
	}
	if o.Organization != "" {
		f.Organization = o.Organization
	}
	if o.AgentTest != "" {
		f.AgentTest = o.AgentTest
	}
}

func (f promptFile) compile() (*PromptCatalog, error) {
	parse := func(name, text string) (*template.Template, error) {
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("prompt %q is empty", name)
		}
		t, err := template.New(name).Funcs(promptFuncs).Option("missingkey=error").Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse prompt %q: %w", name, err)
		}
		return t, nil
	}

	c := &PromptCatalog{defaults: f.Defaults}
	var err error
	if c.analysis, err = parse("analysis", f.Analysis); err != nil {
		return nil, err
	}
	if c.generation, err = parse("generation", f.Generation); err != nil {
		return nil, err
	}
	if c.organization, err = parse("organization", f.Organization); err != nil {
		return nil, err
	}
	if c.agentTest, err = parse("agent_test", f.AgentTest); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *PromptCatalog) AnalysisPrompt(p services.AnalysisPrompt) (string, error) {
	if strings.TrimSpace(p.Persona) == "" {
		p.Persona = c.defaults.AnalysisPersona
	}
	return render(c.analysis, p)
}

func (c *PromptCatalog) GenerationPrompt(p services.GenerationPrompt) (string, error) {
	if strings.TrimSpace(p.Persona) == "" {
		p.Persona = c.defaults.GenerationPersona
	}
	if p.Tone == "" {
		p.Tone = c.defaults.Tone
	}
	return render(c.generation, p)
}

func (c *PromptCatalog) OrganizationPrompt(text string) (string, error) {
	return render(c.organization, struct{ Text string }{text})
}

func (c *PromptCatalog) AgentTestPrompt(instructions, text string) (string, error) {
	return render(c.agentTest, struct{ Instructions, Text string }{instructions, text})
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt %q: %w", t.Name(), err)
	}
	return strings.TrimSpace(buf.String()), nil
}
