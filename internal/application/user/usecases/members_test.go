package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/application/sidechannel"
	"github.com/lexdoc-ai/lexdoc/internal/domain/audit"
	"github.com/lexdoc-ai/lexdoc/internal/domain/user"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
)

const testCNPJ = "12345678000190"

func newMember(t *testing.T, id uint, email string, cargo user.Cargo) *user.User {
	t.Helper()
	u, err := user.NewUser(email, "Membro "+email, "hash")
	require.NoError(t, err)
	u.SetID(id)
	require.NoError(t, u.JoinTenant(user.Membership{TenantCNPJ: testCNPJ, Cargo: cargo}))
	return u
}

func TestListUsers_TenantScoped(t *testing.T) {
	admin := newMember(t, 1, "ana@escritorio.com.br", user.CargoAdmin)
	intern := newMember(t, 2, "joao@escritorio.com.br", user.CargoIntern)
	outsider, err := user.NewUser("bob@outro.com.br", "Bob", "hash")
	require.NoError(t, err)
	outsider.SetID(3)

	uc := NewListUsersUseCase(newMockUserRepository(admin, intern, outsider), newTestLogger())
	got, err := uc.Execute(context.Background(), session.FromUser(intern))
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCreateUser(t *testing.T) {
	admin := newMember(t, 1, "ana@escritorio.com.br", user.CargoAdmin)
	repo := newMockUserRepository(admin)
	side := &mockSideChannel{}
	uc := NewCreateUserUseCase(repo, fakeHasher{}, sidechannel.NewMailer("https://app.lexdoc.ai"), side, newTestLogger())

	got, err := uc.Execute(context.Background(), CreateUserCommand{
		Session:  session.FromUser(admin),
		Email:    "carla@escritorio.com.br",
		Name:     "Carla Dias",
		Password: "provisoria1",
		Cargo:    "advogado_senior",
		OABUF:    "rj",
	})
	require.NoError(t, err)

	assert.Equal(t, testCNPJ, got.TenantCNPJ)
	assert.Equal(t, "advogado_senior", got.Cargo)
	assert.Equal(t, "Advogado Sênior", got.CargoLabel)
	assert.Equal(t, "RJ", got.OABUF)

	require.Len(t, side.emails, 1)
	assert.Equal(t, []string{"carla@escritorio.com.br"}, side.emails[0].To)
	assert.Contains(t, side.emails[0].HTMLBody, "Advogado Sênior")

	require.Len(t, side.records, 1)
	assert.Equal(t, audit.ActionUserCreated, side.records[0].Action)
	assert.Equal(t, "ana@escritorio.com.br", side.records[0].UserEmail)
	assert.Equal(t, got.ID, side.records[0].EntityID)
}

func TestCreateUser_Rejections(t *testing.T) {
	admin := newMember(t, 1, "ana@escritorio.com.br", user.CargoAdmin)
	intern := newMember(t, 2, "joao@escritorio.com.br", user.CargoIntern)
	repo := newMockUserRepository(admin, intern)
	side := &mockSideChannel{}
	uc := NewCreateUserUseCase(repo, fakeHasher{}, sidechannel.NewMailer("https://app.lexdoc.ai"), side, newTestLogger())

	base := CreateUserCommand{Session: session.FromUser(admin), Email: "nova@escritorio.com.br", Name: "Nova", Password: "provisoria1", Cargo: "estagiario"}

	tests := []struct {
		name    string
		mutate  func(c *CreateUserCommand)
		errType errors.ErrorType
	}{
		{"not admin", func(c *CreateUserCommand) { c.Session = session.FromUser(intern) }, errors.ErrorTypeForbidden},
		{"duplicate email", func(c *CreateUserCommand) { c.Email = "joao@escritorio.com.br" }, errors.ErrorTypeConflict},
		{"invalid cargo", func(c *CreateUserCommand) { c.Cargo = "socio" }, errors.ErrorTypeValidation},
		{"short password", func(c *CreateUserCommand) { c.Password = "123" }, errors.ErrorTypeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := base
			tt.mutate(&cmd)
			_, err := uc.Execute(context.Background(), cmd)
			require.Error(t, err)
			assert.Equal(t, tt.errType, errors.GetAppError(err).Type)
		})
	}
	assert.Empty(t, side.emails)
	assert.Empty(t, side.records)
}

func TestUpdateCargo_InvalidatesSession(t *testing.T) {
	admin := newMember(t, 1, "ana@escritorio.com.br", user.CargoAdmin)
	intern := newMember(t, 2, "joao@escritorio.com.br", user.CargoIntern)
	repo := newMockUserRepository(admin, intern)
	sessions := &mockSessions{}
	uc := NewUpdateCargoUseCase(repo, sessions, newTestLogger())

	got, err := uc.Execute(context.Background(), UpdateCargoCommand{Session: session.FromUser(admin), UserSID: intern.SID(), Cargo: "advogado_junior"})
	require.NoError(t, err)
	assert.Equal(t, "advogado_junior", got.Cargo)
	assert.Equal(t, []string{intern.SID()}, sessions.invalidated)

	_, err = uc.Execute(context.Background(), UpdateCargoCommand{Session: session.FromUser(admin), UserSID: admin.SID(), Cargo: "estagiario"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), UpdateCargoCommand{Session: session.FromUser(admin), UserSID: "usr_missing", Cargo: "estagiario"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteUser(t *testing.T) {
	admin := newMember(t, 1, "ana@escritorio.com.br", user.CargoAdmin)
	intern := newMember(t, 2, "joao@escritorio.com.br", user.CargoIntern)
	repo := newMockUserRepository(admin, intern)
	sessions := &mockSessions{}
	uc := NewDeleteUserUseCase(repo, sessions, newTestLogger())

	require.NoError(t, uc.Execute(context.Background(), DeleteUserCommand{Session: session.FromUser(admin), UserSID: intern.SID()}))
	assert.Equal(t, []string{intern.SID()}, repo.deleted)
	assert.Equal(t, []string{intern.SID()}, sessions.invalidated)

	err := uc.Execute(context.Background(), DeleteUserCommand{Session: session.FromUser(admin), UserSID: admin.SID()})
	assert.True(t, errors.IsValidationError(err))
}
