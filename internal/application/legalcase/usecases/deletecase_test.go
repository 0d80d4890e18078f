package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lexdoc-ai/lexdoc/internal/domain/document"
	"github.com/lexdoc-ai/lexdoc/internal/domain/filing"
	filingvo "github.com/lexdoc-ai/lexdoc/internal/domain/filing/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/domain/legalcase"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/models"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/repository"
	"github.com/lexdoc-ai/lexdoc/internal/shared/db"
)

type caseStore struct {
	gdb     *gorm.DB
	cases   legalcase.Repository
	docs    document.Repository
	filings filing.Repository
	tx      db.Transactor
}

func newCaseStore(t *testing.T) *caseStore {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(&models.CaseModel{}, &models.DocumentModel{}, &models.FilingModel{}))

	return &caseStore{
		gdb:     gdb,
		cases:   repository.NewCaseRepository(gdb, newTestLogger()),
		docs:    repository.NewDocumentRepository(gdb, newTestLogger()),
		filings: repository.NewFilingRepository(gdb, newTestLogger()),
		tx:      db.NewTransactionManager(gdb),
	}
}

// seed stores a case with two documents and one filing linked to it, plus an
// unrelated document.
func (s *caseStore) seed(t *testing.T) (*legalcase.Case, []*document.Document, *filing.Filing, *document.Document) {
	t.Helper()
	ctx := context.Background()

	c, err := legalcase.NewCase(legalcase.CaseParams{TenantCNPJ: testCNPJ, Title: "Ação de cobrança", Client: "Banco XYZ"})
	require.NoError(t, err)
	require.NoError(t, s.cases.Create(ctx, c))
	caseSID := c.SID()

	var docs []*document.Document
	for _, name := range []string{"inicial.pdf", "procuracao.pdf"} {
		d, err := document.NewDocument(document.UploadParams{TenantCNPJ: testCNPJ, CaseSID: &caseSID, FileName: name, FileURL: "https://files.test/" + name})
		require.NoError(t, err)
		require.NoError(t, s.docs.Create(ctx, d))
		docs = append(docs, d)
	}

	f, err := filing.NewGeneratedFiling(filing.GeneratedParams{
		TenantCNPJ:        testCNPJ,
		CaseSID:           &caseSID,
		DocumentSID:       docs[0].SID(),
		Type:              filingvo.FilingTypeAnswer,
		RecommendedAction: "Contestar",
		ContentText:       "Texto da peça",
		LegalDeadline:     time.Now().UTC().Add(15 * 24 * time.Hour),
	})
	require.NoError(t, err)
	require.NoError(t, s.filings.Create(ctx, f))

	loose, err := document.NewDocument(document.UploadParams{TenantCNPJ: testCNPJ, FileName: "avulso.pdf", FileURL: "https://files.test/avulso.pdf"})
	require.NoError(t, err)
	require.NoError(t, s.docs.Create(ctx, loose))

	return c, docs, f, loose
}

func TestGetCase_IncludesLinkedRecords(t *testing.T) {
	s := newCaseStore(t)
	c, docs, f, _ := s.seed(t)

	uc := NewGetCaseUseCase(s.cases, s.docs, s.filings, newTestLogger())
	got, err := uc.Execute(context.Background(), GetCaseQuery{Session: testSession(), CaseSID: c.SID()})
	require.NoError(t, err)

	assert.Equal(t, c.SID(), got.ID)
	assert.Len(t, got.Documents, len(docs))
	require.Len(t, got.Filings, 1)
	assert.Equal(t, f.SID(), got.Filings[0].ID)
}

func TestDeleteCase_DetachesDocumentsAndFilings(t *testing.T) {
	s := newCaseStore(t)
	ctx := context.Background()
	c, docs, f, loose := s.seed(t)

	uc := NewDeleteCaseUseCase(s.cases, s.docs, s.filings, s.tx, newTestLogger())
	require.NoError(t, uc.Execute(ctx, DeleteCaseCommand{Session: testSession(), CaseSID: c.SID()}))

	gone, err := s.cases.GetBySID(ctx, testCNPJ, c.SID())
	require.NoError(t, err)
	assert.Nil(t, gone)

	for _, d := range append(docs, loose) {
		reloaded, err := s.docs.GetBySID(ctx, testCNPJ, d.SID())
		require.NoError(t, err)
		require.NotNil(t, reloaded, "documents survive the case")
		assert.Nil(t, reloaded.CaseSID())
	}

	reloaded, err := s.filings.GetBySID(ctx, testCNPJ, f.SID())
	require.NoError(t, err)
	require.NotNil(t, reloaded, "filings survive the case")
	assert.Nil(t, reloaded.CaseSID())
	require.NotNil(t, reloaded.DocumentSID())
	assert.Equal(t, docs[0].SID(), *reloaded.DocumentSID())
}

type failingFilingDetach struct {
	filing.Repository
}

func (f failingFilingDetach) DetachCase(ctx context.Context, tenantCNPJ, caseSID string) (int64, error) {
	return 0, errors.New("lock timeout")
}

func TestDeleteCase_RollsBackOnDetachFailure(t *testing.T) {
	s := newCaseStore(t)
	ctx := context.Background()
	c, docs, _, _ := s.seed(t)

	uc := NewDeleteCaseUseCase(s.cases, s.docs, failingFilingDetach{s.filings}, s.tx, newTestLogger())
	require.Error(t, uc.Execute(ctx, DeleteCaseCommand{Session: testSession(), CaseSID: c.SID()}))

	still, err := s.cases.GetBySID(ctx, testCNPJ, c.SID())
	require.NoError(t, err)
	require.NotNil(t, still)

	reloaded, err := s.docs.GetBySID(ctx, testCNPJ, docs[0].SID())
	require.NoError(t, err)
	require.NotNil(t, reloaded.CaseSID(), "document detach is rolled back")
	assert.Equal(t, c.SID(), *reloaded.CaseSID())
}

func TestDeleteCase_OtherTenant(t *testing.T) {
	s := newCaseStore(t)
	c, _, _, _ := s.seed(t)

	other := testSession()
	other.TenantCNPJ = "99999999000199"
	uc := NewDeleteCaseUseCase(s.cases, s.docs, s.filings, s.tx, newTestLogger())
	err := uc.Execute(context.Background(), DeleteCaseCommand{Session: other, CaseSID: c.SID()})
	require.Error(t, err)

	still, err := s.cases.GetBySID(context.Background(), testCNPJ, c.SID())
	require.NoError(t, err)
	assert.NotNil(t, still)
}
