package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/document"
	vo "github.com/lexdoc-ai/lexdoc/internal/domain/document/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/shared/constants"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
)

const testCNPJ = "12345678000190"

func testSession() *session.Context {
	return &session.Context{UserSID: "usr_ana", Email: "ana@escritorio.com.br", Name: "Ana Silva", TenantCNPJ: testCNPJ, Cargo: "advogado_senior"}
}

func seedDocument(t *testing.T, repo *mockDocumentRepository, tenantCNPJ, name string) *document.Document {
	t.Helper()
	d, err := document.NewDocument(document.UploadParams{
		TenantCNPJ: tenantCNPJ,
		FileName:   name,
		FileURL:    "https://files.test/" + name,
		StorageKey: "documents/" + tenantCNPJ + "/" + name,
		SizeBytes:  2048,
		UploadedBy: "ana@escritorio.com.br",
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), d))
	return d
}

func TestListDocuments_Filters(t *testing.T) {
	repo := &mockDocumentRepository{}
	seedDocument(t, repo, testCNPJ, "citacao.pdf")

	uc := NewListDocumentsUseCase(repo, newTestLogger())
	result, err := uc.Execute(context.Background(), ListDocumentsQuery{
		Session:  testSession(),
		Status:   "concluido",
		CaseSID:  "cas_123",
		PageSize: 500,
	})
	require.NoError(t, err)

	require.Len(t, result.Documents, 1)
	assert.Empty(t, result.Documents[0].ExtractedText)
	assert.Equal(t, constants.MaxPageSize, result.PageSize)

	f := repo.lastFilter
	assert.Equal(t, testCNPJ, f.TenantCNPJ)
	require.NotNil(t, f.Status)
	assert.Equal(t, vo.ProcessingStatusCompleted, *f.Status)
	require.NotNil(t, f.CaseSID)
	assert.Equal(t, "cas_123", *f.CaseSID)
	assert.Equal(t, "created_at", f.SortBy)
}

func TestListDocuments_Rejections(t *testing.T) {
	uc := NewListDocumentsUseCase(&mockDocumentRepository{}, newTestLogger())

	_, err := uc.Execute(context.Background(), ListDocumentsQuery{Session: testSession(), Status: "arquivado"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), ListDocumentsQuery{Session: &session.Context{UserSID: "usr_x"}})
	assert.True(t, errors.IsForbiddenError(err))
}

func TestGetDocument(t *testing.T) {
	repo := &mockDocumentRepository{}
	d := seedDocument(t, repo, testCNPJ, "citacao.pdf")
	other := seedDocument(t, repo, "99999999000199", "alheio.pdf")

	uc := NewGetDocumentUseCase(repo, newTestLogger())

	got, err := uc.Execute(context.Background(), GetDocumentQuery{Session: testSession(), DocumentSID: d.SID()})
	require.NoError(t, err)
	assert.Equal(t, d.SID(), got.ID)
	assert.Equal(t, "processando_ocr", got.Status)

	_, err = uc.Execute(context.Background(), GetDocumentQuery{Session: testSession(), DocumentSID: other.SID()})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteDocument_RemovesBlob(t *testing.T) {
	repo := &mockDocumentRepository{}
	d := seedDocument(t, repo, testCNPJ, "citacao.pdf")
	storage := &mockStorage{}

	uc := NewDeleteDocumentUseCase(repo, storage, newTestLogger())
	require.NoError(t, uc.Execute(context.Background(), DeleteDocumentCommand{Session: testSession(), DocumentSID: d.SID()}))

	assert.Equal(t, []string{d.SID()}, repo.deleted)
	assert.Equal(t, []string{d.StorageKey()}, storage.removed)
}

func TestDeleteDocument_BlobFailureIsIgnored(t *testing.T) {
	repo := &mockDocumentRepository{}
	d := seedDocument(t, repo, testCNPJ, "citacao.pdf")
	storage := &mockStorage{RemoveFunc: func(ctx context.Context, key string) error { return errBoom }}

	uc := NewDeleteDocumentUseCase(repo, storage, newTestLogger())
	assert.NoError(t, uc.Execute(context.Background(), DeleteDocumentCommand{Session: testSession(), DocumentSID: d.SID()}))
	assert.Len(t, repo.deleted, 1)
}

func TestDeleteDocument_KeepsBlobWhenRowSurvives(t *testing.T) {
	repo := &mockDocumentRepository{DeleteFunc: func(ctx context.Context, tenantCNPJ, sid string) error { return errBoom }}
	d := seedDocument(t, repo, testCNPJ, "citacao.pdf")
	storage := &mockStorage{}

	uc := NewDeleteDocumentUseCase(repo, storage, newTestLogger())
	err := uc.Execute(context.Background(), DeleteDocumentCommand{Session: testSession(), DocumentSID: d.SID()})

	assert.Equal(t, errors.ErrorTypeInternal, errors.GetAppError(err).Type)
	assert.Empty(t, storage.removed)
}
