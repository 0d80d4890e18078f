package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

type mockAuditRepository struct {
	entries   []*audit.Entry
	lastLimit int
	lastCNPJ  string
}

func (m *mockAuditRepository) Append(ctx context.Context, e *audit.Entry) error {
	m.entries = append(m.entries, e)
	return nil
}

func (m *mockAuditRepository) ListRecent(ctx context.Context, tenantCNPJ string, limit int) ([]*audit.Entry, error) {
	m.lastCNPJ, m.lastLimit = tenantCNPJ, limit
	return m.entries, nil
}

func adminSession() *session.Context {
	return &session.Context{UserSID: "usr_adm", Email: "admin@spa.adv.br", TenantCNPJ: "12345678000190", Cargo: "admin", IsAdmin: true}
}

func TestListAuditLogs(t *testing.T) {
	repo := &mockAuditRepository{}
	e, err := audit.NewEntry(audit.Record{
		TenantCNPJ: "12345678000190",
		UserEmail:  "ana@spa.adv.br",
		Action:     audit.ActionCaseCreated,
		EntityType: "Caso",
		EntityID:   "cas_1",
		Success:    true,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Append(context.Background(), e))

	uc := NewListAuditLogsUseCase(repo, logger.NewLogger())
	got, err := uc.Execute(context.Background(), ListAuditLogsQuery{Session: adminSession()})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "caso_criado", got[0].Action)
	assert.Equal(t, "Caso criado", got[0].ActionLabel)
	assert.Equal(t, defaultAuditLimit, repo.lastLimit)
	assert.Equal(t, "12345678000190", repo.lastCNPJ)

	_, err = uc.Execute(context.Background(), ListAuditLogsQuery{Session: adminSession(), Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, maxAuditLimit, repo.lastLimit)
}

func TestListAuditLogs_AdminOnly(t *testing.T) {
	uc := NewListAuditLogsUseCase(&mockAuditRepository{}, logger.NewLogger())

	member := adminSession()
	member.IsAdmin = false
	member.Cargo = "assistente"
	_, err := uc.Execute(context.Background(), ListAuditLogsQuery{Session: member})
	assert.True(t, errors.IsForbiddenError(err))
}
