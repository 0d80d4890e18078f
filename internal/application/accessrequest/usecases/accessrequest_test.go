package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/application/sidechannel"
	"github.com/lexdoc-ai/lexdoc/internal/domain/accessrequest"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/tenant"
	"github.com/lexdoc-ai/lexdoc/internal/domain/user"
	apperrors "github.com/lexdoc-ai/lexdoc/internal/shared/errors"
)

const testCNPJ = "12345678000190"

type harness struct {
	requests *mockRequestRepository
	tenants  *mockTenantRepository
	users    *mockUserRepository
	tx       *mockTransactor
	sessions *mockSessions
	side     *mockSideChannel
	mailer   *sidechannel.Mailer

	requester *user.User
	admin     *user.User
}

func newHarness(t *testing.T, contactEmail string) *harness {
	t.Helper()
	office, err := tenant.NewTenant(testCNPJ, "Silva Pereira Advogados", "", "", contactEmail)
	require.NoError(t, err)

	requester, err := user.NewUser("joao@gmail.com", "João Souza", "hash")
	require.NoError(t, err)
	requester.SetID(2)

	admin, err := user.NewUser("ana@silvapereira.adv.br", "Ana Silva", "hash")
	require.NoError(t, err)
	admin.SetID(1)
	require.NoError(t, admin.JoinTenant(user.Membership{TenantCNPJ: testCNPJ, Cargo: user.CargoAdmin}))

	return &harness{
		requests:  &mockRequestRepository{},
		tenants:   &mockTenantRepository{tenants: map[string]*tenant.Tenant{testCNPJ: office}},
		users:     &mockUserRepository{users: []*user.User{admin, requester}},
		tx:        &mockTransactor{},
		sessions:  &mockSessions{},
		side:      &mockSideChannel{},
		mailer:    sidechannel.NewMailer("https://app.lexdoc.ai"),
		requester: requester,
		admin:     admin,
	}
}

func (h *harness) submit(t *testing.T) *accessrequest.AccessRequest {
	t.Helper()
	uc := NewSubmitAccessRequestUseCase(h.requests, h.tenants, h.users, h.mailer, h.side, newTestLogger())
	_, err := uc.Execute(context.Background(), SubmitAccessRequestCommand{
		Session:        session.FromUser(h.requester),
		RequestedCargo: "advogado_junior",
		TenantCNPJ:     "12.345.678/0001-90",
		OABNumber:      "123456",
		OABUF:          "sp",
	})
	require.NoError(t, err)
	return h.requests.requests[len(h.requests.requests)-1]
}

func (h *harness) adminSession() *session.Context {
	return session.FromUser(h.admin)
}

func TestSubmitAccessRequest_EmailsOfficeContact(t *testing.T) {
	h := newHarness(t, "contato@silvapereira.adv.br")

	r := h.submit(t)

	assert.Equal(t, accessrequest.StatusPending, r.Status())
	assert.Equal(t, "joao@gmail.com", r.UserEmail())
	assert.Equal(t, "João Souza", r.UserName(), "falls back to the account name")
	assert.Equal(t, "Silva Pereira Advogados", r.CompanyName())
	assert.Equal(t, "SP", r.OABUF())

	require.Len(t, h.side.emails, 1)
	assert.Equal(t, []string{"contato@silvapereira.adv.br"}, h.side.emails[0].To)
}

func TestSubmitAccessRequest_EmailsAdminsWithoutContact(t *testing.T) {
	h := newHarness(t, "")

	h.submit(t)

	require.Len(t, h.side.emails, 1)
	assert.Equal(t, []string{"ana@silvapereira.adv.br"}, h.side.emails[0].To)
}

func TestSubmitAccessRequest_Rejections(t *testing.T) {
	h := newHarness(t, "contato@silvapereira.adv.br")
	h.submit(t)
	uc := NewSubmitAccessRequestUseCase(h.requests, h.tenants, h.users, h.mailer, h.side, newTestLogger())

	tests := []struct {
		name    string
		cmd     SubmitAccessRequestCommand
		errType apperrors.ErrorType
	}{
		{"anonymous", SubmitAccessRequestCommand{RequestedCargo: "estagiario", TenantCNPJ: testCNPJ}, apperrors.ErrorTypeUnauthorized},
		{"duplicate pending", SubmitAccessRequestCommand{Session: session.FromUser(h.requester), RequestedCargo: "estagiario", TenantCNPJ: testCNPJ}, apperrors.ErrorTypeConflict},
		{"unknown office", SubmitAccessRequestCommand{Session: session.FromUser(h.requester), RequestedCargo: "estagiario", TenantCNPJ: "99999999000199"}, apperrors.ErrorTypeNotFound},
		{"admin cargo", SubmitAccessRequestCommand{Session: session.FromUser(h.requester), RequestedCargo: "admin", TenantCNPJ: testCNPJ}, apperrors.ErrorTypeValidation},
		{"invalid cargo", SubmitAccessRequestCommand{Session: session.FromUser(h.requester), RequestedCargo: "socio", TenantCNPJ: testCNPJ}, apperrors.ErrorTypeValidation},
		{"already in an office", SubmitAccessRequestCommand{Session: h.adminSession(), RequestedCargo: "estagiario", TenantCNPJ: testCNPJ}, apperrors.ErrorTypeConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.errType, appErr.Type)
		})
	}
	assert.Len(t, h.requests.requests, 1)
}

func TestListAccessRequests(t *testing.T) {
	h := newHarness(t, "contato@silvapereira.adv.br")
	h.submit(t)
	uc := NewListAccessRequestsUseCase(h.requests, newTestLogger())

	pending, err := uc.Execute(context.Background(), ListAccessRequestsQuery{Session: h.adminSession()})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Advogado Júnior", pending[0].CargoLabel)

	approved, err := uc.Execute(context.Background(), ListAccessRequestsQuery{Session: h.adminSession(), Status: "aprovada"})
	require.NoError(t, err)
	assert.Empty(t, approved)

	_, err = uc.Execute(context.Background(), ListAccessRequestsQuery{Session: h.adminSession(), Status: "arquivada"})
	assert.True(t, apperrors.IsValidationError(err))

	member := h.adminSession()
	member.IsAdmin = false
	_, err = uc.Execute(context.Background(), ListAccessRequestsQuery{Session: member})
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestApproveAccessRequest_JoinsRequesterToOffice(t *testing.T) {
	h := newHarness(t, "contato@silvapereira.adv.br")
	r := h.submit(t)
	h.side.emails = nil

	uc := NewApproveAccessRequestUseCase(h.requests, h.users, h.tx, h.sessions, h.mailer, h.side, newTestLogger())
	got, err := uc.Execute(context.Background(), RespondAccessRequestCommand{Session: h.adminSession(), RequestID: r.SID()})
	require.NoError(t, err)

	assert.Equal(t, "aprovada", got.Status)
	assert.Equal(t, "ana@silvapereira.adv.br", got.RespondedBy)
	assert.NotNil(t, got.RespondedAt)

	assert.Equal(t, testCNPJ, h.requester.TenantCNPJ())
	assert.Equal(t, user.CargoJuniorLawyer, h.requester.Cargo())
	assert.Equal(t, "123456", h.requester.OABNumber())
	assert.Equal(t, []string{h.requester.SID()}, h.users.updated)
	assert.Equal(t, []string{h.requester.SID()}, h.sessions.invalidated)
	assert.Equal(t, 1, h.tx.calls)

	require.Len(t, h.side.emails, 1)
	assert.Equal(t, []string{"joao@gmail.com"}, h.side.emails[0].To)
	require.Len(t, h.side.records, 1)
	assert.Equal(t, audit.ActionAccessApproved, h.side.records[0].Action)

	_, err = uc.Execute(context.Background(), RespondAccessRequestCommand{Session: h.adminSession(), RequestID: r.SID()})
	assert.True(t, apperrors.IsConflictError(err), "a request is answered once")
}

func TestApproveAccessRequest_PersistFailure(t *testing.T) {
	h := newHarness(t, "contato@silvapereira.adv.br")
	r := h.submit(t)
	h.side.emails = nil
	h.users.UpdateFunc = func(ctx context.Context, u *user.User) error { return errors.New("db down") }

	uc := NewApproveAccessRequestUseCase(h.requests, h.users, h.tx, h.sessions, h.mailer, h.side, newTestLogger())
	_, err := uc.Execute(context.Background(), RespondAccessRequestCommand{Session: h.adminSession(), RequestID: r.SID()})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.GetAppError(err).Type)
	assert.Empty(t, h.side.emails)
	assert.Empty(t, h.side.records)
	assert.Empty(t, h.sessions.invalidated)
}

func TestRejectAccessRequest(t *testing.T) {
	h := newHarness(t, "contato@silvapereira.adv.br")
	r := h.submit(t)
	h.side.emails = nil
	uc := NewRejectAccessRequestUseCase(h.requests, h.mailer, h.side, newTestLogger())

	_, err := uc.Execute(context.Background(), RespondAccessRequestCommand{Session: h.adminSession(), RequestID: r.SID()})
	assert.True(t, apperrors.IsValidationError(err), "reason is required")

	got, err := uc.Execute(context.Background(), RespondAccessRequestCommand{
		Session:   h.adminSession(),
		RequestID: r.SID(),
		Reason:    "Não reconhecemos o solicitante",
	})
	require.NoError(t, err)
	assert.Equal(t, "rejeitada", got.Status)
	assert.Equal(t, "Não reconhecemos o solicitante", got.RejectionReason)
	assert.False(t, h.requester.HasTenant())

	require.Len(t, h.side.emails, 1)
	assert.Contains(t, h.side.emails[0].HTMLBody, "Não reconhecemos o solicitante")
	require.Len(t, h.side.records, 1)
	assert.Equal(t, audit.ActionAccessRejected, h.side.records[0].Action)
}

func TestRespondAccessRequest_OtherTenant(t *testing.T) {
	h := newHarness(t, "contato@silvapereira.adv.br")
	r := h.submit(t)

	other := h.adminSession()
	other.TenantCNPJ = "99999999000199"
	uc := NewRejectAccessRequestUseCase(h.requests, h.mailer, h.side, newTestLogger())
	_, err := uc.Execute(context.Background(), RespondAccessRequestCommand{Session: other, RequestID: r.SID(), Reason: "x"})
	assert.True(t, apperrors.IsNotFoundError(err))
}
