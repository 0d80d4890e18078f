package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	auditusecases "github.com/lexdoc-ai/lexdoc/internal/application/audit/usecases"
	dashboardusecases "github.com/lexdoc-ai/lexdoc/internal/application/dashboard/usecases"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/common"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"
)

// DashboardHandler serves the office overview and its audit trail.
type DashboardHandler struct {
	getDashboardUseCase  getDashboardUseCase
	listAuditLogsUseCase listAuditLogsUseCase
	logger               logger.Interface
}

func NewDashboardHandler(
	getDashboardUseCase getDashboardUseCase,
	listAuditLogsUseCase listAuditLogsUseCase,
	logger logger.Interface,
) *DashboardHandler {
	return &DashboardHandler{
		getDashboardUseCase:  getDashboardUseCase,
		listAuditLogsUseCase: listAuditLogsUseCase,
		logger:               logger,
	}
}

// GetDashboard handles GET /dashboard
// @Summary Office dashboard
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	sc := common.CurrentSession(c)
	result, err := h.getDashboardUseCase.Execute(c.Request.Context(), dashboardusecases.GetDashboardQuery{Session: sc})
	if err != nil {
		h.logger.Errorw("failed to get dashboard", "user_sid", sessionSID(c), "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListAuditLogs handles GET /audit-logs
// @Summary Recent audit entries
// @Tags audit
// @Produce json
// @Security Bearer
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /audit-logs [get]
func (h *DashboardHandler) ListAuditLogs(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			utils.ErrorResponseWithError(c, errors.NewValidationError("limit must be a positive integer"))
			return
		}
		limit = v
	}

	result, err := h.listAuditLogsUseCase.Execute(c.Request.Context(), auditusecases.ListAuditLogsQuery{
		Session: common.CurrentSession(c),
		Limit:   limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func sessionSID(c *gin.Context) string {
	if sc := common.CurrentSession(c); sc != nil {
		return sc.UserSID
	}
	return ""
}
