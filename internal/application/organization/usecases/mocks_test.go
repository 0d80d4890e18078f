package usecases

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/domain/agent"
	agentvo "github.com/lexdoc-ai/lexdoc/internal/domain/agent/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/organization"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type mockStorage struct {
	UploadFunc func(ctx context.Context, in services.UploadInput) (*services.StoredFile, error)
}

func (m *mockStorage) Upload(ctx context.Context, in services.UploadInput) (*services.StoredFile, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, in)
	}
	return &services.StoredFile{Key: in.Key, URL: "https://files.test/" + in.Key, Size: in.Size}, nil
}

func (m *mockStorage) Remove(ctx context.Context, key string) error { return nil }

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
	return json.RawMessage(`{"texto_completo":"Contrato de prestação de serviços","numero_paginas":3}`), nil
}

type mockLLM struct {
	InvokeFunc func(ctx context.Context, req services.LLMRequest) (*services.LLMResponse, error)
}

func (m *mockLLM) Invoke(ctx context.Context, req services.LLMRequest) (*services.LLMResponse, error) {
	if m.InvokeFunc != nil {
		return m.InvokeFunc(ctx, req)
	}
	return &services.LLMResponse{Content: `{
		"tipo_documento": "contrato",
		"setor_destino": "administrativo",
		"paginas_reordenadas": true,
		"documentos_separados": ["Contrato", "Aditivo"],
		"observacoes": "Contrato com aditivo anexo",
		"partes_identificadas": {"autor": "Empresa X", "reu": "", "numero_processo": ""},
		"palavras_chave": ["contrato", "aditivo"],
		"nome_sugerido": "Contrato Empresa X.pdf",
		"caminho_pasta_sugerido": "Administrativo/Contratos"
	}`}, nil
}

type mockPrompts struct {
	organized []string
}

func (m *mockPrompts) AnalysisPrompt(p services.AnalysisPrompt) (string, error) { return "", nil }
func (m *mockPrompts) GenerationPrompt(p services.GenerationPrompt) (string, error) {
	return "", nil
}

func (m *mockPrompts) OrganizationPrompt(text string) (string, error) {
	m.organized = append(m.organized, text)
	return "organizar: " + text, nil
}

func (m *mockPrompts) AgentTestPrompt(instructions, text string) (string, error) { return "", nil }

type mockOrganizedRepository struct {
	mu      sync.Mutex
	docs    []*organization.OrganizedDocument
	updates int

	ListFunc func(ctx context.Context, filter organization.Filter) ([]*organization.OrganizedDocument, int64, error)
}

func (m *mockOrganizedRepository) Create(ctx context.Context, d *organization.OrganizedDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d.SetID(uint(len(m.docs) + 1))
	m.docs = append(m.docs, d)
	return nil
}

func (m *mockOrganizedRepository) Update(ctx context.Context, d *organization.OrganizedDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates++
	return nil
}

func (m *mockOrganizedRepository) GetBySID(ctx context.Context, tenantCNPJ, sid string) (*organization.OrganizedDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.docs {
		if d.SID() == sid && d.TenantCNPJ() == tenantCNPJ {
			return d, nil
		}
	}
	return nil, nil
}

func (m *mockOrganizedRepository) List(ctx context.Context, filter organization.Filter) ([]*organization.OrganizedDocument, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return m.docs, int64(len(m.docs)), nil
}

// mockBatchStore keeps a snapshot of every save so tests can follow progress.
type mockBatchStore struct {
	mu        sync.Mutex
	snapshots []organization.Batch
	SaveFunc  func(ctx context.Context, b *organization.Batch) error
}

func (m *mockBatchStore) Save(ctx context.Context, b *organization.Batch) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, b)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := *b
	snap.DocumentSIDs = append([]string(nil), b.DocumentSIDs...)
	m.snapshots = append(m.snapshots, snap)
	return nil
}

func (m *mockBatchStore) Get(ctx context.Context, tenantCNPJ, batchID string) (*organization.Batch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.snapshots) - 1; i >= 0; i-- {
		b := m.snapshots[i]
		if b.ID == batchID && b.TenantCNPJ == tenantCNPJ {
			return &b, nil
		}
	}
	return nil, nil
}

func (m *mockBatchStore) last() organization.Batch {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshots[len(m.snapshots)-1]
}

type mockAgentRepository struct {
	FirstActiveFunc func(ctx context.Context, tenantCNPJ string) (*agent.Agent, error)
}

func (m *mockAgentRepository) Create(ctx context.Context, a *agent.Agent) error { return nil }
func (m *mockAgentRepository) Update(ctx context.Context, a *agent.Agent) error { return nil }
func (m *mockAgentRepository) Delete(ctx context.Context, tenantCNPJ, sid string) error {
	return nil
}

func (m *mockAgentRepository) GetBySID(ctx context.Context, tenantCNPJ, sid string) (*agent.Agent, error) {
	return nil, nil
}

func (m *mockAgentRepository) List(ctx context.Context, filter agent.Filter) ([]*agent.Agent, int64, error) {
	return nil, 0, nil
}

func (m *mockAgentRepository) FirstActive(ctx context.Context, tenantCNPJ string) (*agent.Agent, error) {
	if m.FirstActiveFunc != nil {
		return m.FirstActiveFunc(ctx, tenantCNPJ)
	}
	return nil, nil
}

func (m *mockAgentRepository) CountActive(ctx context.Context, tenantCNPJ string) (int64, error) {
	return 0, nil
}

func (m *mockAgentRepository) IncrementUsage(ctx context.Context, tenantCNPJ, sid string, u agentvo.Usage, at time.Time) error {
	panic("organization must not touch agent metrics")
}

func (m *mockAgentRepository) SaveUsage(ctx context.Context, a *agent.Agent) error {
	panic("organization must not touch agent metrics")
}

type mockAuditor struct {
	records []audit.Record
}

func (m *mockAuditor) Audit(r audit.Record) {
	m.records = append(m.records, r)
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
