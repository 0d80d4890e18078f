package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/application/sidechannel"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/tenant"
	"github.com/lexdoc-ai/lexdoc/internal/domain/user"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
)

const testCNPJ = "12345678000190"

type onboardHarness struct {
	tenants  *mockTenantRepository
	depts    *mockDepartmentRepository
	users    *mockUserRepository
	tx       *mockTransactor
	sessions *mockSessions
	side     *mockSideChannel
	caller   *user.User
	uc       *OnboardTenantUseCase
}

func newOnboardHarness(t *testing.T) *onboardHarness {
	t.Helper()
	caller, err := user.NewUser("ana@silvapereira.adv.br", "Ana Silva", "hash")
	require.NoError(t, err)
	caller.SetID(1)

	h := &onboardHarness{
		tenants:  newMockTenantRepository(),
		depts:    &mockDepartmentRepository{},
		users:    newMockUserRepository(caller),
		tx:       &mockTransactor{},
		sessions: &mockSessions{},
		side:     &mockSideChannel{},
		caller:   caller,
	}
	h.uc = NewOnboardTenantUseCase(h.tenants, h.depts, h.users, h.tx, h.sessions,
		sidechannel.NewMailer("https://app.lexdoc.ai"), h.side, newTestLogger())
	return h
}

func (h *onboardHarness) command() OnboardTenantCommand {
	return OnboardTenantCommand{
		Session:      session.FromUser(h.caller),
		CNPJ:         "12.345.678/0001-90",
		CompanyName:  "Silva Pereira Advogados",
		Address:      "Av. Paulista, 1000",
		Phone:        "11999990000",
		ContactEmail: "contato@silvapereira.adv.br",
	}
}

func TestOnboardTenant_CreatesOfficeAndPromotesCaller(t *testing.T) {
	h := newOnboardHarness(t)

	result, err := h.uc.Execute(context.Background(), h.command())
	require.NoError(t, err)

	assert.Equal(t, testCNPJ, result.Tenant.CNPJ)
	assert.Equal(t, "SPADOC", result.Tenant.Sigla)
	assert.Equal(t, "https://spadoc.lexdoc.ai", result.Tenant.CustomDomain)
	assert.Equal(t, tenant.DefaultPrimaryColor, result.Tenant.PrimaryColor)
	assert.True(t, result.Tenant.Settings.MLEnabled)

	require.Len(t, result.Departments, 5)
	assert.Equal(t, "Cível", result.Departments[0].Name)
	assert.Equal(t, "SPADOC_civel_v1", result.Departments[0].AIModelID)

	assert.Equal(t, testCNPJ, h.caller.TenantCNPJ())
	assert.True(t, h.caller.IsAdmin())
	assert.Equal(t, []string{h.caller.SID()}, h.users.updated)
	assert.Equal(t, []string{h.caller.SID()}, h.sessions.invalidated)
	assert.Equal(t, 1, h.tx.calls)

	require.Len(t, h.side.emails, 1)
	assert.Equal(t, []string{"ana@silvapereira.adv.br"}, h.side.emails[0].To)
	assert.Contains(t, h.side.emails[0].Subject, "SPADOC")

	require.Len(t, h.side.records, 1)
	assert.Equal(t, audit.ActionTenantRegistered, h.side.records[0].Action)
	assert.Equal(t, testCNPJ, h.side.records[0].TenantCNPJ)
	assert.True(t, h.side.records[0].Success)
}

func TestOnboardTenant_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(h *onboardHarness, cmd *OnboardTenantCommand)
		errType errors.ErrorType
	}{
		{
			name:    "short CNPJ",
			mutate:  func(h *onboardHarness, cmd *OnboardTenantCommand) { cmd.CNPJ = "1234" },
			errType: errors.ErrorTypeValidation,
		},
		{
			name:    "missing company name",
			mutate:  func(h *onboardHarness, cmd *OnboardTenantCommand) { cmd.CompanyName = "  " },
			errType: errors.ErrorTypeValidation,
		},
		{
			name: "duplicate CNPJ",
			mutate: func(h *onboardHarness, cmd *OnboardTenantCommand) {
				existing, err := tenant.NewTenant(testCNPJ, "Outro Escritório", "", "", "")
				require.NoError(t, err)
				h.tenants.tenants[testCNPJ] = existing
			},
			errType: errors.ErrorTypeConflict,
		},
		{
			name: "caller already in an office",
			mutate: func(h *onboardHarness, cmd *OnboardTenantCommand) {
				cmd.Session.TenantCNPJ = "99999999000199"
			},
			errType: errors.ErrorTypeConflict,
		},
		{
			name:    "anonymous",
			mutate:  func(h *onboardHarness, cmd *OnboardTenantCommand) { cmd.Session = nil },
			errType: errors.ErrorTypeUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newOnboardHarness(t)
			cmd := h.command()
			tt.mutate(h, &cmd)

			_, err := h.uc.Execute(context.Background(), cmd)
			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.errType, appErr.Type)

			assert.Empty(t, h.depts.depts)
			assert.Empty(t, h.side.emails)
			assert.Empty(t, h.side.records)
		})
	}
}

func TestOnboardTenant_DepartmentFailureRollsBack(t *testing.T) {
	h := newOnboardHarness(t)
	h.depts.CreateFunc = func(ctx context.Context, d *tenant.Department) error {
		return errBoom
	}

	_, err := h.uc.Execute(context.Background(), h.command())
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeInternal, errors.GetAppError(err).Type)

	assert.Equal(t, 1, h.tx.rollbacks)
	assert.Empty(t, h.sessions.invalidated)
	assert.Empty(t, h.side.emails)
	assert.Empty(t, h.side.records)
}
