package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/legalcase"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/legalcase/valueobjects"
	apperrors "github.com/lexdoc-ai/lexdoc/internal/shared/errors"
)

const testCNPJ = "12345678000190"

func testSession() *session.Context {
	return &session.Context{UserSID: "usr_ana", Email: "ana@escritorio.com.br", Name: "Ana Silva", TenantCNPJ: testCNPJ, Cargo: "advogado_senior"}
}

func TestCreateCase_CallerIsResponsible(t *testing.T) {
	repo := &mockCaseRepository{}
	auditor := &mockAuditor{}
	uc := NewCreateCaseUseCase(repo, auditor, newTestLogger())

	value := 15000.0
	got, err := uc.Execute(context.Background(), CreateCaseCommand{
		Session:    testSession(),
		Title:      "Ação de cobrança",
		Client:     "Banco XYZ",
		Area:       "consumidor",
		ClaimValue: &value,
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@escritorio.com.br", got.ResponsibleLawyer)
	assert.Equal(t, "em_analise", got.Status)
	assert.Equal(t, "Consumidor", got.AreaLabel)
	assert.Equal(t, 15000.0, *got.ClaimValue)
	require.Len(t, repo.cases, 1)
	assert.Equal(t, testCNPJ, repo.cases[0].TenantCNPJ())

	require.Len(t, auditor.records, 1)
	assert.Equal(t, audit.ActionCaseCreated, auditor.records[0].Action)
	assert.Equal(t, got.ID, auditor.records[0].EntityID)
}

func TestCreateCase_Rejections(t *testing.T) {
	uc := NewCreateCaseUseCase(&mockCaseRepository{}, &mockAuditor{}, newTestLogger())
	negative := -1.0

	tests := []struct {
		name string
		cmd  CreateCaseCommand
	}{
		{"missing title", CreateCaseCommand{Session: testSession(), Client: "X"}},
		{"missing client", CreateCaseCommand{Session: testSession(), Title: "X"}},
		{"invalid area", CreateCaseCommand{Session: testSession(), Title: "X", Client: "Y", Area: "espacial"}},
		{"negative claim", CreateCaseCommand{Session: testSession(), Title: "X", Client: "Y", ClaimValue: &negative}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, apperrors.IsValidationError(err), "got %v", err)
		})
	}

	_, err := uc.Execute(context.Background(), CreateCaseCommand{Session: &session.Context{UserSID: "usr_x"}, Title: "X", Client: "Y"})
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestCreateCase_PersistFailureIsNotAudited(t *testing.T) {
	repo := &mockCaseRepository{CreateFunc: func(ctx context.Context, c *legalcase.Case) error { return errors.New("db down") }}
	auditor := &mockAuditor{}
	uc := NewCreateCaseUseCase(repo, auditor, newTestLogger())

	_, err := uc.Execute(context.Background(), CreateCaseCommand{Session: testSession(), Title: "X", Client: "Y"})
	require.Error(t, err)
	assert.Empty(t, auditor.records)
}

func TestListCases_Filters(t *testing.T) {
	repo := &mockCaseRepository{}
	uc := NewListCasesUseCase(repo, newTestLogger())

	_, err := uc.Execute(context.Background(), ListCasesQuery{Session: testSession(), Status: "em_andamento", Area: "trabalhista", PageSize: 500})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, vo.CaseStatusInProgress, *repo.lastFilter.Status)
	require.NotNil(t, repo.lastFilter.Area)
	assert.Equal(t, vo.LegalAreaLabor, *repo.lastFilter.Area)
	assert.Equal(t, testCNPJ, repo.lastFilter.TenantCNPJ)
	assert.Equal(t, 100, repo.lastFilter.PageSize)
	assert.Equal(t, "created_at", repo.lastFilter.SortBy)

	_, err = uc.Execute(context.Background(), ListCasesQuery{Session: testSession(), Status: "perdido"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestUpdateCase(t *testing.T) {
	repo := &mockCaseRepository{}
	created, err := NewCreateCaseUseCase(repo, &mockAuditor{}, newTestLogger()).Execute(context.Background(), CreateCaseCommand{
		Session: testSession(), Title: "Ação", Client: "Banco",
	})
	require.NoError(t, err)

	uc := NewUpdateCaseUseCase(repo, newTestLogger())
	status := vo.CaseStatusAwaitingResponse
	deadline := time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC)
	got, err := uc.Execute(context.Background(), UpdateCaseCommand{
		Session: testSession(),
		CaseSID: created.ID,
		Update:  legalcase.CaseUpdate{Status: &status, NextDeadline: &deadline},
	})
	require.NoError(t, err)
	assert.Equal(t, "aguardando_resposta", got.Status)
	assert.Equal(t, deadline, *got.NextDeadline)
	assert.Equal(t, 1, repo.updates)

	empty := " "
	_, err = uc.Execute(context.Background(), UpdateCaseCommand{Session: testSession(), CaseSID: created.ID, Update: legalcase.CaseUpdate{Title: &empty}})
	assert.True(t, apperrors.IsValidationError(err))

	other := testSession()
	other.TenantCNPJ = "99999999000199"
	_, err = uc.Execute(context.Background(), UpdateCaseCommand{Session: other, CaseSID: created.ID})
	assert.True(t, apperrors.IsNotFoundError(err))
}
