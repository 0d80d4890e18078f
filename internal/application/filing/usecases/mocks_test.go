package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/document"
	"github.com/lexdoc-ai/lexdoc/internal/domain/filing"
	filingvo "github.com/lexdoc-ai/lexdoc/internal/domain/filing/valueobjects"
	"github.com/lexdoc-ai/lexdoc/internal/domain/legalcase"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/domain/tenant"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/persistence/models"
	"github.com/lexdoc-ai/lexdoc/internal/infrastructure/repository"
	"github.com/lexdoc-ai/lexdoc/internal/shared/db"
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

type mockAuditor struct {
	records []audit.Record
}

func (m *mockAuditor) Audit(r audit.Record) {
	m.records = append(m.records, r)
}

type mockRenderer struct {
	RenderFunc func(text string) (string, error)
}

func (m *mockRenderer) RenderFiling(text string) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(text)
	}
	return "<p>" + text + "</p>", nil
}

type mockExporter struct {
	last       services.PrintableFiling
	ExportFunc func(ctx context.Context, f services.PrintableFiling) ([]byte, error)
}

func (m *mockExporter) ExportPDF(ctx context.Context, f services.PrintableFiling) ([]byte, error) {
	m.last = f
	if m.ExportFunc != nil {
		return m.ExportFunc(ctx, f)
	}
	return []byte("%PDF-1.3"), nil
}

// store wires the real GORM repositories over an in-memory SQLite database.
type store struct {
	tenants tenant.Repository
	cases   legalcase.Repository
	docs    document.Repository
	filings filing.Repository
	tx      db.Transactor
}

func newStore(t *testing.T) *store {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(&models.TenantModel{}, &models.CaseModel{}, &models.DocumentModel{}, &models.FilingModel{}))

	return &store{
		tenants: repository.NewTenantRepository(gdb, newTestLogger()),
		cases:   repository.NewCaseRepository(gdb, newTestLogger()),
		docs:    repository.NewDocumentRepository(gdb, newTestLogger()),
		filings: repository.NewFilingRepository(gdb, newTestLogger()),
		tx:      db.NewTransactionManager(gdb),
	}
}

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

// seedAnalysedFiling stores an analysed document and the filing generated
// from it, returning both reloaded from the database.
func (s *store) seedAnalysedFiling(t *testing.T) (*document.Document, *filing.Filing) {
	t.Helper()
	ctx := context.Background()

	d, err := document.NewDocument(document.UploadParams{
		TenantCNPJ: testCNPJ,
		FileName:   "citacao.pdf",
		FileURL:    "https://files.test/citacao.pdf",
		StorageKey: "documents/" + testCNPJ + "/citacao.pdf",
		UploadedBy: "ana@escritorio.com.br",
	})
	require.NoError(t, err)
	require.NoError(t, s.docs.Create(ctx, d))

	require.NoError(t, d.RecordAnalysis("Citação do réu", document.Analysis{
		DocumentType:            "citacao",
		DocumentationSufficient: true,
		RecommendedAction:       "Apresentar contestação",
		SuggestedFiling:         "contestacao",
		Plaintiff:               "Banco XYZ S.A.",
		Defendant:               "João da Silva",
		ProcessNumber:           "0001234-56.2026.8.26.0100",
		ClaimValue:              floatPtr(50000),
		ResponseDays:            intPtr(15),
	}, "Agente Cível", "gpt-4-turbo", false))

	deadline := time.Date(2026, 11, 2, 12, 0, 0, 0, time.UTC)
	f, err := filing.NewGeneratedFiling(filing.GeneratedParams{
		TenantCNPJ:        testCNPJ,
		DocumentSID:       d.SID(),
		Type:              filingvo.FilingTypeAnswer,
		RecommendedAction: "Apresentar contestação",
		ContentText:       "# CONTESTAÇÃO\n\nTexto da defesa.",
		ContentHTML:       "<h1>CONTESTAÇÃO</h1>",
		LegalDeadline:     deadline,
		AgentName:         "Agente Cível",
		ModelUsed:         "gpt-4-turbo",
		CreatedBy:         "ana@escritorio.com.br",
	})
	require.NoError(t, err)
	require.NoError(t, s.filings.Create(ctx, f))
	require.NoError(t, d.AttachFiling(f.SID(), deadline))
	require.NoError(t, s.docs.Update(ctx, d))

	reloadedDoc, err := s.docs.GetBySID(ctx, testCNPJ, d.SID())
	require.NoError(t, err)
	reloadedFiling, err := s.filings.GetBySID(ctx, testCNPJ, f.SID())
	require.NoError(t, err)
	return reloadedDoc, reloadedFiling
}
