package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/agent"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/agent/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

const testCNPJ = "12345678000190"

var errBoom = errors.New("boom")

func testSession() *session.Context {
	return &session.Context{UserSID: "usr_ana", Email: "ana@escritorio.com.br", Name: "Ana Silva", TenantCNPJ: testCNPJ, Cargo: "advogado_senior"}
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}

type mockAgentRepository struct {
	agents     []*agent.Agent
	updates    int
	deleted    []string
	lastFilter agent.Filter

	CreateFunc func(ctx context.Context, a *agent.Agent) error
}

func (m *mockAgentRepository) Create(ctx context.Context, a *agent.Agent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	a.SetID(uint(len(m.agents) + 1))
	m.agents = append(m.agents, a)
	return nil
}

func (m *mockAgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	m.updates++
	return nil
}

func (m *mockAgentRepository) Delete(ctx context.Context, tenantCNPJ, sid string) error {
	m.deleted = append(m.deleted, sid)
	return nil
}

func (m *mockAgentRepository) GetBySID(ctx context.Context, tenantCNPJ, sid string) (*agent.Agent, error) {
	for _, a := range m.agents {
		if a.SID() == sid && a.TenantCNPJ() == tenantCNPJ {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockAgentRepository) List(ctx context.Context, filter agent.Filter) ([]*agent.Agent, int64, error) {
	m.lastFilter = filter
	return m.agents, int64(len(m.agents)), nil
}

func (m *mockAgentRepository) FirstActive(ctx context.Context, tenantCNPJ string) (*agent.Agent, error) {
	return nil, nil
}

func (m *mockAgentRepository) CountActive(ctx context.Context, tenantCNPJ string) (int64, error) {
	return 0, nil
}

func (m *mockAgentRepository) IncrementUsage(ctx context.Context, tenantCNPJ, sid string, u vo.Usage, at time.Time) error {
	panic("agent test runs must not touch metrics")
}

func (m *mockAgentRepository) SaveUsage(ctx context.Context, a *agent.Agent) error {
	panic("agent test runs must not touch metrics")
}

type mockExtractor struct {
	ExtractFunc func(ctx context.Context, in services.ExtractionInput, schema *services.Schema) (json.RawMessage, error)
}

func (m *mockExtractor) Extract(ctx context.Context, in services.ExtractionInput, schema *services.Schema) (json.RawMessage, error) {
	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, in, schema)
	}
	return json.RawMessage(`{"texto_completo":"Intimação para apresentar contestação em 15 dias","numero_paginas":1}`), nil
}

type mockLLM struct {
	requests   []services.LLMRequest
	InvokeFunc func(ctx context.Context, req services.LLMRequest) (*services.LLMResponse, error)
}

func (m *mockLLM) Invoke(ctx context.Context, req services.LLMRequest) (*services.LLMResponse, error) {
	m.requests = append(m.requests, req)
	if m.InvokeFunc != nil {
		return m.InvokeFunc(ctx, req)
	}
	return &services.LLMResponse{Content: "Tipo: intimação. Prazo: 15 dias.", Model: req.Model}, nil
}

type mockPrompts struct {
	instructions string
	text         string
}

func (m *mockPrompts) AnalysisPrompt(p services.AnalysisPrompt) (string, error) { return "", nil }

func (m *mockPrompts) GenerationPrompt(p services.GenerationPrompt) (string, error) {
	return "", nil
}

func (m *mockPrompts) OrganizationPrompt(text string) (string, error) { return "", nil }

func (m *mockPrompts) AgentTestPrompt(instructions, text string) (string, error) {
	m.instructions, m.text = instructions, text
	return instructions + "\n\n" + text, nil
}
