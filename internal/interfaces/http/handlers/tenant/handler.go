package tenant

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lexdoc-ai/lexdoc/internal/application/tenant/usecases"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/common"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"
)

// logoMaxBytes mirrors the logo policy of the upload use case so oversized
// files are refused before they are buffered.
const logoMaxBytes = 5 << 20

type Handler struct {
	onboardUC         onboardTenantUseCase
	getUC             getTenantUseCase
	updateCompanyUC   updateCompanyDataUseCase
	updateSettingsUC  updateSettingsUseCase
	updateBrandingUC  updateBrandingUseCase
	uploadLogoUC      uploadLogoUseCase
	listDepartmentsUC listDepartmentsUseCase
	logger            logger.Interface
}

func NewHandler(
	onboardUC onboardTenantUseCase,
	getUC getTenantUseCase,
	updateCompanyUC updateCompanyDataUseCase,
	updateSettingsUC updateSettingsUseCase,
	updateBrandingUC updateBrandingUseCase,
	uploadLogoUC uploadLogoUseCase,
	listDepartmentsUC listDepartmentsUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		onboardUC:         onboardUC,
		getUC:             getUC,
		updateCompanyUC:   updateCompanyUC,
		updateSettingsUC:  updateSettingsUC,
		updateBrandingUC:  updateBrandingUC,
		uploadLogoUC:      uploadLogoUC,
		listDepartmentsUC: listDepartmentsUC,
		logger:            logger,
	}
}

// Onboard handles POST /tenants
// @Summary Register a law office
// @Description The caller becomes the office administrator.
// @Tags tenant
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body OnboardTenantRequest true "Office data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /tenants [post]
func (h *Handler) Onboard(c *gin.Context) {
	var req OnboardTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for onboard tenant", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.onboardUC.Execute(c.Request.Context(), req.ToCommand(common.CurrentSession(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"tenant":        result.Tenant,
		"departamentos": result.Departments,
	}, "Office registered successfully")
}

// Get handles GET /tenant
// @Summary Current office
// @Tags tenant
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /tenant [get]
func (h *Handler) Get(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), common.CurrentSession(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateCompanyData handles PATCH /tenant
// @Summary Update office registration data
// @Tags tenant
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body UpdateCompanyDataRequest true "Company data"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /tenant [patch]
func (h *Handler) UpdateCompanyData(c *gin.Context) {
	var req UpdateCompanyDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateCompanyUC.Execute(c.Request.Context(), req.ToCommand(common.CurrentSession(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Company data updated successfully", result)
}

// UpdateAISettings handles PATCH /tenant/ai-settings
// @Summary Update AI and practice-area settings
// @Tags tenant
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body UpdateAISettingsRequest true "Settings"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /tenant/ai-settings [patch]
func (h *Handler) UpdateAISettings(c *gin.Context) {
	var req UpdateAISettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateSettingsUC.Execute(c.Request.Context(), req.ToCommand(common.CurrentSession(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings updated successfully", result)
}

// UpdateBranding handles PATCH /tenant/branding
// @Summary Update office colours
// @Tags tenant
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body UpdateBrandingRequest true "Colours as #RRGGBB"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /tenant/branding [patch]
func (h *Handler) UpdateBranding(c *gin.Context) {
	var req UpdateBrandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateBrandingUC.Execute(c.Request.Context(), usecases.UpdateBrandingCommand{
		Session:        common.CurrentSession(c),
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Branding updated successfully", result)
}

// UploadLogo handles POST /tenant/logo
// @Summary Upload the office logo
// @Tags tenant
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param file formData file true "PNG, JPG, SVG or WEBP up to 5 MB"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Router /tenant/logo [post]
func (h *Handler) UploadLogo(c *gin.Context) {
	file, err := common.ReadUpload(c, common.FileField, logoMaxBytes)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uploadLogoUC.Execute(c.Request.Context(), usecases.UploadLogoCommand{
		Session: common.CurrentSession(c),
		File:    file,
	})
	if err != nil {
		h.logger.Warnw("logo upload failed", "file_name", file.FileName, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logo uploaded successfully", result)
}

// ListDepartments handles GET /tenant/departments
// @Summary Office departments
// @Tags tenant
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Router /tenant/departments [get]
func (h *Handler) ListDepartments(c *gin.Context) {
	result, err := h.listDepartmentsUC.Execute(c.Request.Context(), common.CurrentSession(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
