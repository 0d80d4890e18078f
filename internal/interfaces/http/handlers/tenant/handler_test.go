package tenant

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/application/tenant/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/tenant/usecases"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/testutil"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"
)

func init() {
	utils.RegisterGinValidators()
}

type mockOnboardUC struct {
	got    usecases.OnboardTenantCommand
	result *usecases.OnboardTenantResult
	err    error
}

func (m *mockOnboardUC) Execute(_ context.Context, cmd usecases.OnboardTenantCommand) (*usecases.OnboardTenantResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockGetUC struct {
	result *dto.TenantDTO
	err    error
}

func (m *mockGetUC) Execute(_ context.Context, _ *session.Context) (*dto.TenantDTO, error) {
	return m.result, m.err
}

type mockSettingsUC struct {
	got    usecases.UpdateSettingsCommand
	result *dto.TenantDTO
	err    error
}

func (m *mockSettingsUC) Execute(_ context.Context, cmd usecases.UpdateSettingsCommand) (*dto.TenantDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockBrandingUC struct {
	called bool
	result *dto.TenantDTO
	err    error
}

func (m *mockBrandingUC) Execute(_ context.Context, _ usecases.UpdateBrandingCommand) (*dto.TenantDTO, error) {
	m.called = true
	return m.result, m.err
}

type mockLogoUC struct {
	got    usecases.UploadLogoCommand
	result *dto.TenantDTO
	err    error
}

func (m *mockLogoUC) Execute(_ context.Context, cmd usecases.UploadLogoCommand) (*dto.TenantDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type testDeps struct {
	onboard  onboardTenantUseCase
	get      getTenantUseCase
	settings updateSettingsUseCase
	branding updateBrandingUseCase
	logo     uploadLogoUseCase
}

func newTestHandler(deps testDeps) *Handler {
	return NewHandler(deps.onboard, deps.get, nil, deps.settings, deps.branding, deps.logo, nil, testutil.NewMockLogger())
}

func TestHandler_Onboard_Success(t *testing.T) {
	uc := &mockOnboardUC{result: &usecases.OnboardTenantResult{
		Tenant:      &dto.TenantDTO{CNPJ: testutil.TestCNPJ, TradeName: "Silva Advogados"},
		Departments: []*dto.DepartmentDTO{{ID: "dep_1", Name: "Trabalhista"}},
	}}
	h := newTestHandler(testDeps{onboard: uc})

	c, w := testutil.NewTestContext(http.MethodPost, "/tenants", OnboardTenantRequest{
		CNPJ:        "12.345.678/0001-90",
		CompanyName: "Silva Advogados",
	})
	sc := testutil.MemberSession()
	sc.TenantCNPJ = ""
	testutil.SetAuthContext(c, sc)

	h.Onboard(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "12.345.678/0001-90", uc.got.CNPJ)
	assert.Same(t, sc, uc.got.Session)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), `"departamentos"`)
}

func TestHandler_Onboard_InvalidCNPJ(t *testing.T) {
	uc := &mockOnboardUC{}
	h := newTestHandler(testDeps{onboard: uc})

	c, w := testutil.NewTestContext(http.MethodPost, "/tenants", OnboardTenantRequest{
		CNPJ:        "123",
		CompanyName: "Silva Advogados",
	})
	testutil.SetAuthContext(c, testutil.MemberSession())

	h.Onboard(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, uc.got.CNPJ)
}

func TestHandler_Onboard_Conflict(t *testing.T) {
	uc := &mockOnboardUC{err: errors.NewConflictError("office already registered")}
	h := newTestHandler(testDeps{onboard: uc})

	c, w := testutil.NewTestContext(http.MethodPost, "/tenants", OnboardTenantRequest{
		CNPJ:        testutil.TestCNPJ,
		CompanyName: "Silva Advogados",
	})
	testutil.SetAuthContext(c, testutil.MemberSession())

	h.Onboard(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Get(t *testing.T) {
	tests := []struct {
		name     string
		uc       *mockGetUC
		wantCode int
	}{
		{"found", &mockGetUC{result: &dto.TenantDTO{CNPJ: testutil.TestCNPJ}}, http.StatusOK},
		{"no tenant", &mockGetUC{err: errors.NewForbiddenError("user is not linked to an office")}, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(testDeps{get: tt.uc})
			c, w := testutil.NewTestContext(http.MethodGet, "/tenant", nil)
			testutil.SetAuthContext(c, testutil.MemberSession())

			h.Get(c)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestHandler_UpdateAISettings_PartialUpdate(t *testing.T) {
	uc := &mockSettingsUC{result: &dto.TenantDTO{CNPJ: testutil.TestCNPJ}}
	h := newTestHandler(testDeps{settings: uc})

	c, w := testutil.NewTestContext(http.MethodPatch, "/tenant/ai-settings", map[string]any{
		"auto_organizacao": true,
	})
	testutil.SetAuthContext(c, testutil.AdminSession())

	h.UpdateAISettings(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.got.Update.AutoOrganization)
	assert.True(t, *uc.got.Update.AutoOrganization)
	assert.Nil(t, uc.got.Update.MLEnabled)
	assert.Nil(t, uc.got.Update.PreferredAIModel)
}

func TestHandler_UpdateBranding_RejectsBadColour(t *testing.T) {
	uc := &mockBrandingUC{}
	h := newTestHandler(testDeps{branding: uc})

	c, w := testutil.NewTestContext(http.MethodPatch, "/tenant/branding", UpdateBrandingRequest{
		PrimaryColor:   "blue",
		SecondaryColor: "#FFFFFF",
	})
	testutil.SetAuthContext(c, testutil.AdminSession())

	h.UpdateBranding(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, uc.called)
}

func TestHandler_UploadLogo(t *testing.T) {
	uc := &mockLogoUC{result: &dto.TenantDTO{LogoURL: "https://files.example/logo.png"}}
	h := newTestHandler(testDeps{logo: uc})

	c, w := testutil.NewMultipartContext(http.MethodPost, "/tenant/logo", []testutil.UploadPart{
		{Field: "file", FileName: "logo.png", ContentType: "image/png", Data: []byte("\x89PNG....")},
	}, nil)
	testutil.SetAuthContext(c, testutil.AdminSession())

	h.UploadLogo(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "logo.png", uc.got.File.FileName)
	assert.Equal(t, "image/png", uc.got.File.ContentType)
	assert.Equal(t, []byte("\x89PNG...."), uc.got.File.Data)
}

func TestHandler_UploadLogo_MissingFile(t *testing.T) {
	uc := &mockLogoUC{}
	h := newTestHandler(testDeps{logo: uc})

	c, w := testutil.NewMultipartContext(http.MethodPost, "/tenant/logo", nil, map[string]string{"other": "x"})
	testutil.SetAuthContext(c, testutil.AdminSession())

	h.UploadLogo(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(errors.ErrorTypeValidation), resp.Error.Type)
}
