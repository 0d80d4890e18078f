package intake

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/domain/agent"
	agentvo "github.com/lexdoc-ai/lexdoc/internal/domain/agent/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/document"
	docvo "github.com/lexdoc-ai/lexdoc/internal/domain/document/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/domain/filing"
	filingvo "github.com/lexdoc-ai/lexdoc/internal/domain/filing/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/domain/legalcase"
	casevo "github.com/lexdoc-ai/lexdoc/internal/domain/legalcase/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type mockStorage struct {
	UploadFunc func(ctx context.Context, in services.UploadInput) (*services.StoredFile, error)
	RemoveFunc func(ctx context.Context, key string) error
}

func (m *mockStorage) Upload(ctx context.Context, in services.UploadInput) (*services.StoredFile, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, in)
	}
	_, _ = io.Copy(io.Discard, in.Body)
	return &services.StoredFile{
		Key:         in.Key,
		URL:         "https://files.test/" + in.Key,
		ContentType: in.ContentType,
		Size:        in.Size,
	}, nil
}

func (m *mockStorage) Remove(ctx context.Context, key string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, key)
	}
	return nil
}

func (m *mockStorage) URL(ctx context.Context, key string) (string, error) {
	return "https://files.test/" + key, nil
}

type mockExtractor struct {
	ExtractFunc func(ctx context.Context, in services.ExtractionInput, schema *services.Schema) (json.RawMessage, error)
}

func (m *mockExtractor) Extract(ctx context.Context, in services.ExtractionInput, schema *services.Schema) (json.RawMessage, error) {
	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, in, schema)
	}
	return json.RawMessage(`{"texto_completo":"Texto do documento"}`), nil
}

type mockLLM struct {
	mu         sync.Mutex
	calls      []services.LLMRequest
	InvokeFunc func(ctx context.Context, req services.LLMRequest) (*services.LLMResponse, error)
}

func (m *mockLLM) Invoke(ctx context.Context, req services.LLMRequest) (*services.LLMResponse, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()
	if m.InvokeFunc != nil {
		return m.InvokeFunc(ctx, req)
	}
	return &services.LLMResponse{Content: "{}"}, nil
}

func (m *mockLLM) Calls() []services.LLMRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]services.LLMRequest(nil), m.calls...)
}

type mockPrompts struct {
	AnalysisPromptFunc   func(p services.AnalysisPrompt) (string, error)
	GenerationPromptFunc func(p services.GenerationPrompt) (string, error)
}

func (m *mockPrompts) AnalysisPrompt(p services.AnalysisPrompt) (string, error) {
	if m.AnalysisPromptFunc != nil {
		return m.AnalysisPromptFunc(p)
	}
	return "analise: " + p.Text, nil
}

func (m *mockPrompts) GenerationPrompt(p services.GenerationPrompt) (string, error) {
	if m.GenerationPromptFunc != nil {
		return m.GenerationPromptFunc(p)
	}
	return "gerar: " + p.FilingType, nil
}

func (m *mockPrompts) OrganizationPrompt(text string) (string, error) {
	return "organizar: " + text, nil
}

func (m *mockPrompts) AgentTestPrompt(instructions, text string) (string, error) {
	return instructions + "\n" + text, nil
}

type mockDocumentRepository struct {
	mu         sync.Mutex
	docs       map[string]*document.Document
	CreateFunc func(ctx context.Context, d *document.Document) error
	UpdateFunc func(ctx context.Context, d *document.Document) error
}

func newMockDocumentRepository() *mockDocumentRepository {
	return &mockDocumentRepository{docs: map[string]*document.Document{}}
}

func (m *mockDocumentRepository) Create(ctx context.Context, d *document.Document) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	d.SetID(uint(len(m.docs) + 1))
	m.docs[d.SID()] = d
	return nil
}

func (m *mockDocumentRepository) Update(ctx context.Context, d *document.Document) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, d)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[d.SID()] = d
	return nil
}

func (m *mockDocumentRepository) Delete(ctx context.Context, tenantCNPJ, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, sid)
	return nil
}

func (m *mockDocumentRepository) GetBySID(ctx context.Context, tenantCNPJ, sid string) (*document.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.docs[sid]
	if !ok || d.TenantCNPJ() != tenantCNPJ {
		return nil, nil
	}
	return d, nil
}

func (m *mockDocumentRepository) List(ctx context.Context, filter document.Filter) ([]*document.Document, int64, error) {
	return nil, 0, nil
}

func (m *mockDocumentRepository) DetachCase(ctx context.Context, tenantCNPJ, caseSID string) (int64, error) {
	return 0, nil
}

func (m *mockDocumentRepository) DetachFiling(ctx context.Context, tenantCNPJ, filingSID string) (int64, error) {
	return 0, nil
}

func (m *mockDocumentRepository) CountByStatus(ctx context.Context, tenantCNPJ string) (map[docvo.ProcessingStatus]int64, error) {
	return nil, nil
}

type mockFilingRepository struct {
	mu         sync.Mutex
	filings    map[string]*filing.Filing
	CreateFunc func(ctx context.Context, f *filing.Filing) error
}

func newMockFilingRepository() *mockFilingRepository {
	return &mockFilingRepository{filings: map[string]*filing.Filing{}}
}

func (m *mockFilingRepository) Create(ctx context.Context, f *filing.Filing) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, f)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	f.SetID(uint(len(m.filings) + 1))
	m.filings[f.SID()] = f
	return nil
}

func (m *mockFilingRepository) Update(ctx context.Context, f *filing.Filing) error {
	return nil
}

func (m *mockFilingRepository) Delete(ctx context.Context, tenantCNPJ, sid string) error {
	return nil
}

func (m *mockFilingRepository) GetBySID(ctx context.Context, tenantCNPJ, sid string) (*filing.Filing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.filings[sid]
	if !ok {
		return nil, nil
	}
	return f, nil
}

func (m *mockFilingRepository) List(ctx context.Context, filter filing.Filter) ([]*filing.Filing, int64, error) {
	return nil, 0, nil
}

func (m *mockFilingRepository) DetachCase(ctx context.Context, tenantCNPJ, caseSID string) (int64, error) {
	return 0, nil
}

func (m *mockFilingRepository) CountByStatus(ctx context.Context, tenantCNPJ string) (map[filingvo.FilingStatus]int64, error) {
	return nil, nil
}

type mockCaseRepository struct {
	GetBySIDFunc func(ctx context.Context, tenantCNPJ, sid string) (*legalcase.Case, error)
}

func (m *mockCaseRepository) Create(ctx context.Context, c *legalcase.Case) error { return nil }
func (m *mockCaseRepository) Update(ctx context.Context, c *legalcase.Case) error { return nil }
func (m *mockCaseRepository) Delete(ctx context.Context, tenantCNPJ, sid string) error {
	return nil
}

func (m *mockCaseRepository) GetBySID(ctx context.Context, tenantCNPJ, sid string) (*legalcase.Case, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, tenantCNPJ, sid)
	}
	return nil, nil
}

func (m *mockCaseRepository) List(ctx context.Context, filter legalcase.Filter) ([]*legalcase.Case, int64, error) {
	return nil, 0, nil
}

func (m *mockCaseRepository) CountByStatus(ctx context.Context, tenantCNPJ string) (map[casevo.CaseStatus]int64, error) {
	return nil, nil
}

func (m *mockCaseRepository) ListUpcomingDeadlines(ctx context.Context, tenantCNPJ string, from, to time.Time, limit int) ([]*legalcase.Case, error) {
	return nil, nil
}

// mockAgentRepository keeps agents in memory. GetBySID returns a copy so the
// read-modify-write strategy behaves like a database round trip.
type mockAgentRepository struct {
	mu     sync.Mutex
	agents map[string]agent.AgentState

	GetBySIDHook       func()
	IncrementUsageFunc func(ctx context.Context, tenantCNPJ, sid string, u agentvo.Usage, at time.Time) error
	SaveUsageFunc      func(ctx context.Context, a *agent.Agent) error
}

func newMockAgentRepository(agents ...*agent.Agent) *mockAgentRepository {
	m := &mockAgentRepository{agents: map[string]agent.AgentState{}}
	for i, a := range agents {
		a.SetID(uint(i + 1))
		m.agents[a.SID()] = stateOf(a)
	}
	return m
}

func stateOf(a *agent.Agent) agent.AgentState {
	return agent.AgentState{
		ID:                 a.ID(),
		SID:                a.SID(),
		TenantCNPJ:         a.TenantCNPJ(),
		Name:               a.Name(),
		Description:        a.Description(),
		Instructions:       a.Instructions(),
		Keywords:           a.Keywords(),
		ActionTriggers:     a.ActionTriggers(),
		Personality:        a.Personality(),
		Model:              a.Model(),
		Temperature:        a.Temperature(),
		MaxTokens:          a.MaxTokens(),
		Language:           a.Language(),
		PostAnalysisAction: a.PostAnalysisAction(),
		Status:             a.Status(),
		TotalExecutions:    a.TotalExecutions(),
		Metrics:            a.Metrics(),
		LastExecution:      a.LastExecution(),
		CreatedBy:          a.CreatedBy(),
		CreatedAt:          a.CreatedAt(),
		UpdatedAt:          a.UpdatedAt(),
	}
}

func (m *mockAgentRepository) Create(ctx context.Context, a *agent.Agent) error { return nil }
func (m *mockAgentRepository) Update(ctx context.Context, a *agent.Agent) error { return nil }
func (m *mockAgentRepository) Delete(ctx context.Context, tenantCNPJ, sid string) error {
	return nil
}

func (m *mockAgentRepository) GetBySID(ctx context.Context, tenantCNPJ, sid string) (*agent.Agent, error) {
	m.mu.Lock()
	s, ok := m.agents[sid]
	m.mu.Unlock()
	if !ok {
		return nil, nil
	}
	a, err := agent.ReconstructAgent(s)
	if err != nil {
		return nil, err
	}
	if m.GetBySIDHook != nil {
		m.GetBySIDHook()
	}
	return a, nil
}

func (m *mockAgentRepository) List(ctx context.Context, filter agent.Filter) ([]*agent.Agent, int64, error) {
	return nil, 0, nil
}

func (m *mockAgentRepository) FirstActive(ctx context.Context, tenantCNPJ string) (*agent.Agent, error) {
	return nil, nil
}

func (m *mockAgentRepository) CountActive(ctx context.Context, tenantCNPJ string) (int64, error) {
	return int64(len(m.agents)), nil
}

func (m *mockAgentRepository) IncrementUsage(ctx context.Context, tenantCNPJ, sid string, u agentvo.Usage, at time.Time) error {
	if m.IncrementUsageFunc != nil {
		return m.IncrementUsageFunc(ctx, tenantCNPJ, sid, u, at)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.agents[sid]
	if !ok {
		return errNoAgent
	}
	s.TotalExecutions += u.Executions
	s.Metrics.DocumentsAnalyzed += u.DocumentsAnalyzed
	s.Metrics.FilingsGenerated += u.FilingsGenerated
	s.LastExecution = &at
	m.agents[sid] = s
	return nil
}

func (m *mockAgentRepository) SaveUsage(ctx context.Context, a *agent.Agent) error {
	if m.SaveUsageFunc != nil {
		return m.SaveUsageFunc(ctx, a)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.agents[a.SID()]
	s.TotalExecutions = a.TotalExecutions()
	s.Metrics = a.Metrics()
	s.LastExecution = a.LastExecution()
	m.agents[a.SID()] = s
	return nil
}

func (m *mockAgentRepository) state(sid string) agent.AgentState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.agents[sid]
}

type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockRenderer struct{}

func (mockRenderer) RenderFiling(text string) (string, error) {
	return "<p>" + text + "</p>", nil
}

type mockAuditor struct {
	mu      sync.Mutex
	records []audit.Record
}

func (m *mockAuditor) Audit(r audit.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, r)
}

func (m *mockAuditor) actions() []audit.Action {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]audit.Action, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r.Action)
	}
	return out
}

type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any) {}
func (m *mockLogger) Warn(msg string, args ...any) {}
func (m *mockLogger) Error(msg string, args ...any) {}
func (m *mockLogger) Fatal(msg string, args ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any) {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...any) {}

func (m *mockLogger) Warnw(msg string, keysAndValues ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, msg)
}
