package member

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lexdoc-ai/lexdoc/internal/application/user/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/user/usecases"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/testutil"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"
)

func init() {
	utils.RegisterGinValidators()
}

type mockCreateUC struct {
	got    usecases.CreateUserCommand
	called bool
	result *dto.UserDTO
	err    error
}

func (m *mockCreateUC) Execute(_ context.Context, cmd usecases.CreateUserCommand) (*dto.UserDTO, error) {
	m.called = true
	m.got = cmd
	return m.result, m.err
}

type mockUpdateCargoUC struct {
	got    usecases.UpdateCargoCommand
	result *dto.UserDTO
	err    error
}

func (m *mockUpdateCargoUC) Execute(_ context.Context, cmd usecases.UpdateCargoCommand) (*dto.UserDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockDeleteUC struct {
	got usecases.DeleteUserCommand
	err error
}

func (m *mockDeleteUC) Execute(_ context.Context, cmd usecases.DeleteUserCommand) error {
	m.got = cmd
	return m.err
}

func TestHandler_Create(t *testing.T) {
	valid := CreateUserRequest{
		Email:    "joao@silva.adv.br",
		Name:     "João Lima",
		Password: "s3nh@segura",
		Cargo:    "estagiario",
	}

	t.Run("success", func(t *testing.T) {
		uc := &mockCreateUC{result: &dto.UserDTO{ID: "usr_new001", Email: valid.Email, Cargo: "estagiario"}}
		h := NewHandler(nil, uc, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/users", valid)
		testutil.SetAuthContext(c, testutil.AdminSession())

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "estagiario", uc.got.Cargo)
		assert.Equal(t, testutil.TestCNPJ, uc.got.Session.TenantCNPJ)
	})

	t.Run("short password", func(t *testing.T) {
		uc := &mockCreateUC{}
		h := NewHandler(nil, uc, nil, nil, testutil.NewMockLogger())

		req := valid
		req.Password = "123"
		c, w := testutil.NewTestContext(http.MethodPost, "/users", req)
		testutil.SetAuthContext(c, testutil.AdminSession())

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, uc.called)
	})

	t.Run("email taken", func(t *testing.T) {
		uc := &mockCreateUC{err: errors.NewConflictError("email already registered")}
		h := NewHandler(nil, uc, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/users", valid)
		testutil.SetAuthContext(c, testutil.AdminSession())

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_UpdateCargo(t *testing.T) {
	uc := &mockUpdateCargoUC{result: &dto.UserDTO{ID: "usr_member01", Cargo: "advogado_senior"}}
	h := NewHandler(nil, nil, uc, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPatch, "/users/usr_member01/role", UpdateCargoRequest{Cargo: "advogado_senior"})
	testutil.SetAuthContext(c, testutil.AdminSession())
	testutil.SetURLParam(c, "id", "usr_member01")

	h.UpdateCargo(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "usr_member01", uc.got.UserSID)
	assert.Equal(t, "advogado_senior", uc.got.Cargo)
}

func TestHandler_Delete(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		ucErr    error
		wantCode int
	}{
		{"success", "usr_member01", nil, http.StatusNoContent},
		{"bad id", "member01", nil, http.StatusBadRequest},
		{"not in office", "usr_other01", errors.NewNotFoundError("user not found"), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockDeleteUC{err: tt.ucErr}
			h := NewHandler(nil, nil, nil, uc, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodDelete, "/users/"+tt.param, nil)
			testutil.SetAuthContext(c, testutil.AdminSession())
			testutil.SetURLParam(c, "id", tt.param)

			h.Delete(c)

			// gin's c.Status() only records the code on the writer.
			if tt.wantCode == http.StatusNoContent {
				assert.Equal(t, tt.wantCode, c.Writer.Status())
				return
			}
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
