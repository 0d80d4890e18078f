package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/domain/user"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
)

func TestRegister(t *testing.T) {
	repo := newMockUserRepository()
	tokens := &fakeTokens{}
	uc := NewRegisterUseCase(repo, fakeHasher{}, tokens, newTestLogger())

	got, err := uc.Execute(context.Background(), RegisterCommand{Email: " Ana@Escritorio.com.br ", Name: "Ana Silva", Password: "segredo123"})
	require.NoError(t, err)

	assert.Equal(t, "ana@escritorio.com.br", got.User.Email)
	assert.Empty(t, got.User.TenantCNPJ)
	assert.Empty(t, got.User.Cargo, "no cargo before joining an office")
	assert.Equal(t, "access-"+got.User.ID, got.AccessToken)

	stored := repo.users[got.User.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "hashed:segredo123", stored.PasswordHash())

	_, err = uc.Execute(context.Background(), RegisterCommand{Email: "ana@escritorio.com.br", Name: "Ana", Password: "outrasenha"})
	assert.True(t, errors.IsConflictError(err))
}

func TestRegister_Validation(t *testing.T) {
	uc := NewRegisterUseCase(newMockUserRepository(), fakeHasher{}, &fakeTokens{}, newTestLogger())

	tests := []struct {
		name string
		cmd  RegisterCommand
	}{
		{"invalid email", RegisterCommand{Email: "ana", Name: "Ana", Password: "segredo123"}},
		{"short password", RegisterCommand{Email: "ana@x.com", Name: "Ana", Password: "curta"}},
		{"missing name", RegisterCommand{Email: "ana@x.com", Name: " ", Password: "segredo123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, errors.IsValidationError(err), "got %v", err)
		})
	}
}

func TestLogin(t *testing.T) {
	u, err := user.NewUser("ana@escritorio.com.br", "Ana Silva", "hashed:segredo123")
	require.NoError(t, err)
	u.SetID(1)
	uc := NewLoginUseCase(newMockUserRepository(u), fakeHasher{}, &fakeTokens{}, newTestLogger())

	got, err := uc.Execute(context.Background(), LoginCommand{Email: "ANA@escritorio.com.br", Password: "segredo123"})
	require.NoError(t, err)
	assert.Equal(t, u.SID(), got.User.ID)

	_, wrongPassword := uc.Execute(context.Background(), LoginCommand{Email: "ana@escritorio.com.br", Password: "errada123"})
	_, unknownEmail := uc.Execute(context.Background(), LoginCommand{Email: "bob@escritorio.com.br", Password: "segredo123"})
	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	assert.Equal(t, errors.ErrorTypeUnauthorized, errors.GetAppError(wrongPassword).Type)
}

func TestRefreshToken(t *testing.T) {
	uc := NewRefreshTokenUseCase(&fakeTokens{}, newTestLogger())

	pair, err := uc.Execute(context.Background(), "refresh-usr_1")
	require.NoError(t, err)
	assert.Equal(t, "access2-usr_1", pair.AccessToken)

	_, err = uc.Execute(context.Background(), "garbage")
	assert.Equal(t, errors.ErrorTypeUnauthorized, errors.GetAppError(err).Type)

	_, err = uc.Execute(context.Background(), "")
	assert.True(t, errors.IsValidationError(err))
}

func TestGetMeAndUpdateProfile(t *testing.T) {
	u, err := user.NewUser("ana@escritorio.com.br", "Ana Silva", "hash")
	require.NoError(t, err)
	u.SetID(1)
	repo := newMockUserRepository(u)
	sessions := &mockSessions{}
	sc := session.FromUser(u)

	me, err := NewGetMeUseCase(repo, newTestLogger()).Execute(context.Background(), sc)
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", me.FullName)

	updated, err := NewUpdateProfileUseCase(repo, sessions, newTestLogger()).Execute(context.Background(), UpdateProfileCommand{
		Session: sc, Name: "Ana S. Silva", OABNumber: "123456", OABUF: "sp",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana S. Silva", updated.FullName)
	assert.Equal(t, "SP", updated.OABUF)
	assert.Equal(t, []string{u.SID()}, sessions.invalidated)

	_, err = NewGetMeUseCase(repo, newTestLogger()).Execute(context.Background(), &session.Context{UserSID: "usr_gone"})
	assert.Equal(t, errors.ErrorTypeUnauthorized, errors.GetAppError(err).Type)
}
