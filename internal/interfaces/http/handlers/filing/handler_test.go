package filing

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdoc-ai/lexdoc/internal/application/filing/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/filing/usecases"
	casedto "github.com/lexdoc-ai/lexdoc/internal/application/legalcase/dto"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/testutil"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
)

type mockUpdateUC struct {
	got    usecases.UpdateFilingCommand
	called bool
	result *dto.FilingDTO
	err    error
}

func (m *mockUpdateUC) Execute(_ context.Context, cmd usecases.UpdateFilingCommand) (*dto.FilingDTO, error) {
	m.called = true
	m.got = cmd
	return m.result, m.err
}

type mockLinkCaseUC struct {
	got    usecases.LinkCaseCommand
	called bool
	result *dto.FilingDTO
	err    error
}

func (m *mockLinkCaseUC) Execute(_ context.Context, cmd usecases.LinkCaseCommand) (*dto.FilingDTO, error) {
	m.called = true
	m.got = cmd
	return m.result, m.err
}

type mockCreateCaseUC struct {
	got    usecases.CreateCaseFromFilingCommand
	result *casedto.CaseDTO
	err    error
}

func (m *mockCreateCaseUC) Execute(_ context.Context, cmd usecases.CreateCaseFromFilingCommand) (*casedto.CaseDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockExportUC struct {
	result *usecases.ExportFilingPDFResult
	err    error
}

func (m *mockExportUC) Execute(_ context.Context, _ usecases.ExportFilingPDFQuery) (*usecases.ExportFilingPDFResult, error) {
	return m.result, m.err
}

type mockListUC struct {
	got    usecases.ListFilingsQuery
	result *usecases.ListFilingsResult
}

func (m *mockListUC) Execute(_ context.Context, query usecases.ListFilingsQuery) (*usecases.ListFilingsResult, error) {
	m.got = query
	return m.result, nil
}

type testDeps struct {
	list       listFilingsUseCase
	update     updateFilingUseCase
	linkCase   linkCaseUseCase
	createCase createCaseFromFilingUseCase
	export     exportPDFUseCase
}

func newTestHandler(d testDeps) *Handler {
	return NewHandler(d.list, nil, d.update, nil, d.linkCase, d.createCase, d.export, testutil.NewMockLogger())
}

func TestHandler_List_Filters(t *testing.T) {
	uc := &mockListUC{result: &usecases.ListFilingsResult{Filings: []*dto.FilingDTO{}, Page: 1, PageSize: 20}}
	h := newTestHandler(testDeps{list: uc})

	c, w := testutil.NewTestContext(http.MethodGet, "/filings?tipo_peca=contestacao&status=rascunho&page_size=500", nil)
	testutil.SetAuthContext(c, testutil.MemberSession())

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "contestacao", uc.got.Type)
	assert.Equal(t, "rascunho", uc.got.Status)
	assert.Equal(t, 100, uc.got.PageSize)
}

func TestHandler_Update(t *testing.T) {
	t.Run("status transition", func(t *testing.T) {
		uc := &mockUpdateUC{result: &dto.FilingDTO{ID: "fil_abc123", Status: "em_revisao"}}
		h := newTestHandler(testDeps{update: uc})

		c, w := testutil.NewTestContext(http.MethodPatch, "/filings/fil_abc123", map[string]string{"status": "em_revisao"})
		testutil.SetAuthContext(c, testutil.MemberSession())
		testutil.SetURLParam(c, "id", "fil_abc123")

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, uc.got.Status)
		assert.Equal(t, "em_revisao", *uc.got.Status)
		assert.Nil(t, uc.got.Content)
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := &mockUpdateUC{}
		h := newTestHandler(testDeps{update: uc})

		c, w := testutil.NewTestContext(http.MethodPatch, "/filings/fil_abc123", map[string]string{"status": "protocolado"})
		testutil.SetAuthContext(c, testutil.MemberSession())
		testutil.SetURLParam(c, "id", "fil_abc123")

		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, uc.called)
	})
}

func TestHandler_LinkCase(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		ucErr    error
		wantCode int
		wantCall bool
	}{
		{"success", LinkCaseRequest{CaseID: "case_abc123"}, nil, http.StatusOK, true},
		{"missing case", map[string]string{}, nil, http.StatusBadRequest, false},
		{"wrong prefix", LinkCaseRequest{CaseID: "doc_abc123"}, nil, http.StatusBadRequest, false},
		{"case of another office", LinkCaseRequest{CaseID: "case_other1"}, errors.NewNotFoundError("case not found"), http.StatusNotFound, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockLinkCaseUC{result: &dto.FilingDTO{ID: "fil_abc123"}, err: tt.ucErr}
			h := newTestHandler(testDeps{linkCase: uc})

			c, w := testutil.NewTestContext(http.MethodPost, "/filings/fil_abc123/link-case", tt.body)
			testutil.SetAuthContext(c, testutil.MemberSession())
			testutil.SetURLParam(c, "id", "fil_abc123")

			h.LinkCase(c)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantCall, uc.called)
		})
	}
}

func TestHandler_CreateCase_EmptyBody(t *testing.T) {
	uc := &mockCreateCaseUC{result: &casedto.CaseDTO{ID: "case_new001"}}
	h := newTestHandler(testDeps{createCase: uc})

	c, w := testutil.NewTestContext(http.MethodPost, "/filings/fil_abc123/case", nil)
	testutil.SetAuthContext(c, testutil.MemberSession())
	testutil.SetURLParam(c, "id", "fil_abc123")

	h.CreateCase(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "fil_abc123", uc.got.FilingSID)
	assert.Empty(t, uc.got.Title)
}

func TestHandler_ExportPDF(t *testing.T) {
	content := []byte("%PDF-1.3 fake")
	uc := &mockExportUC{result: &usecases.ExportFilingPDFResult{FileName: "CONTESTACAO_-_Apresentar_defesa.pdf", Content: content}}
	h := newTestHandler(testDeps{export: uc})

	c, w := testutil.NewTestContext(http.MethodGet, "/filings/fil_abc123/pdf", nil)
	testutil.SetAuthContext(c, testutil.MemberSession())
	testutil.SetURLParam(c, "id", "fil_abc123")

	h.ExportPDF(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=CONTESTACAO_-_Apresentar_defesa.pdf`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, content, w.Body.Bytes())
}

func TestHandler_ExportPDF_NotFound(t *testing.T) {
	h := newTestHandler(testDeps{export: &mockExportUC{err: errors.NewNotFoundError("filing not found")}})

	c, w := testutil.NewTestContext(http.MethodGet, "/filings/fil_missing/pdf", nil)
	testutil.SetAuthContext(c, testutil.MemberSession())
	testutil.SetURLParam(c, "id", "fil_missing")

	h.ExportPDF(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
}
