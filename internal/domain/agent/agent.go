package agent

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/lexdoc-ai/lexdoc/internal/domain/agent/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/shared/id"
)

const (
	DefaultModel       = "gpt-4-turbo"
	DefaultTemperature = 0.3
	DefaultMaxTokens   = 4000
	MaxTemperature     = 2.0
	MaxResponseTokens  = 32000
)

// DefaultActionTriggers maps document situations to the action the agent takes.
func DefaultActionTriggers() map[string]string {
	return map[string]string{
		"intimacao":    "gerar_contestacao",
		"protesto":     "gerar_defesa",
		"minuta":       "revisar_documento",
		"sentenca":     "gerar_recurso",
		"manifestacao": "analisar_prazo",
	}
}

// Agent is a reusable LLM persona configured by an office.
type Agent struct {
	id                 uint
	sid                string
	tenantCNPJ         string
	name               string
	description        string
	instructions       string
	keywords           []string
	actionTriggers     map[string]string
	personality        vo.Personality
	model              string
	temperature        float64
	maxTokens          int
	language           vo.Language
	postAnalysisAction vo.PostAnalysisAction
	status             vo.AgentStatus
	totalExecutions    int
	metrics            vo.Metrics
	lastExecution      *time.Time
	createdBy          string
	createdAt          time.Time
	updatedAt          time.Time
}

type AgentState struct {
	ID                 uint
	SID                string
	TenantCNPJ         string
	Name               string
	Description        string
	Instructions       string
	Keywords           []string
	ActionTriggers     map[string]string
	Personality        vo.Personality
	Model              string
	Temperature        float64
	MaxTokens          int
	Language           vo.Language
	PostAnalysisAction vo.PostAnalysisAction
	Status             vo.AgentStatus
	TotalExecutions    int
	Metrics            vo.Metrics
	LastExecution      *time.Time
	CreatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// AgentParams configure a new agent; zero values take the defaults.
type AgentParams struct {
	TenantCNPJ         string
	Name               string
	Description        string
	Instructions       string
	Keywords           []string
	Personality        *vo.Personality
	Model              string
	Temperature        *float64
	MaxTokens          int
	Language           vo.Language
	PostAnalysisAction vo.PostAnalysisAction
	Status             vo.AgentStatus
	CreatedBy          string
}

// AgentUpdate is a partial update; nil fields are kept.
type AgentUpdate struct {
	Name               *string
	Description        *string
	Instructions       *string
	Keywords           []string
	Personality        *vo.Personality
	Model              *string
	Temperature        *float64
	MaxTokens          *int
	Language           *vo.Language
	PostAnalysisAction *vo.PostAnalysisAction
	Status             *vo.AgentStatus
}

func NewAgent(p AgentParams) (*Agent, error) {
	if p.TenantCNPJ == "" {
		return nil, fmt.Errorf("tenant CNPJ is required")
	}

	a := &Agent{
		tenantCNPJ:         p.TenantCNPJ,
		name:               strings.TrimSpace(p.Name),
		description:        p.Description,
		instructions:       strings.TrimSpace(p.Instructions),
		keywords:           p.Keywords,
		actionTriggers:     DefaultActionTriggers(),
		personality:        vo.DefaultPersonality(),
		model:              DefaultModel,
		temperature:        DefaultTemperature,
		maxTokens:          DefaultMaxTokens,
		language:           vo.LanguagePortuguese,
		postAnalysisAction: vo.PostAnalysisSaveDraft,
		status:             vo.AgentStatusActive,
		createdBy:          p.CreatedBy,
	}
	if a.keywords == nil {
		a.keywords = []string{}
	}
	if p.Personality != nil {
		a.personality = *p.Personality
	}
	if p.Model != "" {
		a.model = p.Model
	}
	if p.Temperature != nil {
		a.temperature = *p.Temperature
	}
	if p.MaxTokens != 0 {
		a.maxTokens = p.MaxTokens
	}
	if p.Language != "" {
		a.language = p.Language
	}
	if p.PostAnalysisAction != "" {
		a.postAnalysisAction = p.PostAnalysisAction
	}
	if p.Status != "" {
		a.status = p.Status
	}

	if err := a.validate(); err != nil {
		return nil, err
	}

	sid, err := id.NewAgentID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate agent ID: %w", err)
	}
	a.sid = sid

	now := time.Now().UTC()
	a.createdAt = now
	a.updatedAt = now
	return a, nil
}

func ReconstructAgent(s AgentState) (*Agent, error) {
	if s.ID == 0 {
		return nil, fmt.Errorf("agent ID cannot be zero")
	}
	if s.SID == "" {
		return nil, fmt.Errorf("agent SID is required")
	}
	if s.Keywords == nil {
		s.Keywords = []string{}
	}
	if s.ActionTriggers == nil {
		s.ActionTriggers = map[string]string{}
	}
	return &Agent{
		id:                 s.ID,
		sid:                s.SID,
		tenantCNPJ:         s.TenantCNPJ,
		name:               s.Name,
		description:        s.Description,
		instructions:       s.Instructions,
		keywords:           s.Keywords,
		actionTriggers:     s.ActionTriggers,
		personality:        s.Personality,
		model:              s.Model,
		temperature:        s.Temperature,
		maxTokens:          s.MaxTokens,
		language:           s.Language,
		postAnalysisAction: s.PostAnalysisAction,
		status:             s.Status,
		totalExecutions:    s.TotalExecutions,
		metrics:            s.Metrics,
		lastExecution:      s.LastExecution,
		createdBy:          s.CreatedBy,
		createdAt:          s.CreatedAt,
		updatedAt:          s.UpdatedAt,
	}, nil
}

func (a *Agent) ID() uint { return a.id }
func (a *Agent) SID() string { return a.sid }
func (a *Agent) TenantCNPJ() string { return a.tenantCNPJ }
func (a *Agent) Name() string { return a.name }
func (a *Agent) Description() string { return a.description }
func (a *Agent) Instructions() string { return a.instructions }
func (a *Agent) Keywords() []string { return a.keywords }
func (a *Agent) ActionTriggers() map[string]string { return a.actionTriggers }
func (a *Agent) Personality() vo.Personality { return a.personality }
func (a *Agent) Model() string { return a.model }
func (a *Agent) Temperature() float64 { return a.temperature }
func (a *Agent) MaxTokens() int { return a.maxTokens }
func (a *Agent) Language() vo.Language { return a.language }
func (a *Agent) PostAnalysisAction() vo.PostAnalysisAction { return a.postAnalysisAction }
func (a *Agent) Status() vo.AgentStatus { return a.status }
func (a *Agent) TotalExecutions() int { return a.totalExecutions }
func (a *Agent) Metrics() vo.Metrics { return a.metrics }
func (a *Agent) LastExecution() *time.Time { return a.lastExecution }
func (a *Agent) CreatedBy() string { return a.createdBy }
func (a *Agent) CreatedAt() time.Time { return a.createdAt }
func (a *Agent) UpdatedAt() time.Time { return a.updatedAt }

func (a *Agent) SetID(id uint) {
	a.id = id
}

func (a *Agent) IsActive() bool {
	return a.status.IsActive()
}

func (a *Agent) Apply(u AgentUpdate) error {
	next := *a
	if u.Name != nil {
		next.name = strings.TrimSpace(*u.Name)
	}
	if u.Description != nil {
		next.description = *u.Description
	}
	if u.Instructions != nil {
		next.instructions = strings.TrimSpace(*u.Instructions)
	}
	if u.Keywords != nil {
		next.keywords = append([]string(nil), u.Keywords...)
	}
	if u.Personality != nil {
		next.personality = *u.Personality
	}
	if u.Model != nil {
		next.model = *u.Model
	}
	if u.Temperature != nil {
		next.temperature = *u.Temperature
	}
	if u.MaxTokens != nil {
		next.maxTokens = *u.MaxTokens
	}
	if u.Language != nil {
		next.language = *u.Language
	}
	if u.PostAnalysisAction != nil {
		next.postAnalysisAction = *u.PostAnalysisAction
	}
	if u.Status != nil {
		next.status = *u.Status
	}
	if err := next.validate(); err != nil {
		return err
	}
	next.updatedAt = time.Now().UTC()
	*a = next
	return nil
}

// ToggleStatus switches between active and inactive. An agent in training
// becomes active.
func (a *Agent) ToggleStatus() {
	if a.status.IsActive() {
		a.status = vo.AgentStatusInactive
	} else {
		a.status = vo.AgentStatusActive
	}
	a.updatedAt = time.Now().UTC()
}

// RecordUsage applies u to the in-memory counters. Used by the
// read-modify-write metrics strategy.
func (a *Agent) RecordUsage(u vo.Usage, at time.Time) {
	a.totalExecutions += u.Executions
	a.metrics.DocumentsAnalyzed += u.DocumentsAnalyzed
	a.metrics.FilingsGenerated += u.FilingsGenerated
	ts := at.UTC()
	a.lastExecution = &ts
}

func (a *Agent) validate() error {
	if a.name == "" {
		return fmt.Errorf("agent name is required")
	}
	if a.instructions == "" {
		return fmt.Errorf("agent instructions are required")
	}
	if strings.TrimSpace(a.model) == "" {
		return fmt.Errorf("model is required")
	}
	if a.temperature < 0 || a.temperature > MaxTemperature {
		return fmt.Errorf("temperature must be between 0 and %.1f", MaxTemperature)
	}
	if a.maxTokens <= 0 || a.maxTokens > MaxResponseTokens {
		return fmt.Errorf("max tokens must be between 1 and %d", MaxResponseTokens)
	}
	if !a.language.IsValid() {
		return fmt.Errorf("invalid language: %s", a.language)
	}
	if !a.postAnalysisAction.IsValid() {
		return fmt.Errorf("invalid post analysis action: %s", a.postAnalysisAction)
	}
	if !a.status.IsValid() {
		return fmt.Errorf("invalid agent status: %s", a.status)
	}
	return a.personality.Validate()
}
