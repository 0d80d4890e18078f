// Package agent serves the configurable analysis agents of an office.
package agent

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lexdoc-ai/lexdoc/internal/application/agent/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/agent/usecases"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/common"
	"github.com/lexdoc-ai/lexdoc/internal/shared/id"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"
)

type createAgentUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateAgentCommand) (*dto.AgentDTO, error)
}

type listAgentsUseCase interface {
	Execute(ctx context.Context, query usecases.ListAgentsQuery) (*usecases.ListAgentsResult, error)
}

type getAgentUseCase interface {
	Execute(ctx context.Context, query usecases.GetAgentQuery) (*dto.AgentDTO, error)
}

type updateAgentUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateAgentCommand) (*dto.AgentDTO, error)
}

type toggleAgentUseCase interface {
	Execute(ctx context.Context, cmd usecases.ToggleAgentCommand) (*dto.AgentDTO, error)
}

type deleteAgentUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteAgentCommand) error
}

type testAgentUseCase interface {
	Execute(ctx context.Context, cmd usecases.TestAgentCommand) (*dto.TestRunDTO, error)
}

type Handler struct {
	createUC       createAgentUseCase
	listUC         listAgentsUseCase
	getUC          getAgentUseCase
	updateUC       updateAgentUseCase
	toggleUC       toggleAgentUseCase
	deleteUC       deleteAgentUseCase
	testUC         testAgentUseCase
	maxUploadBytes int64
	logger         logger.Interface
}

func NewHandler(
	createUC createAgentUseCase,
	listUC listAgentsUseCase,
	getUC getAgentUseCase,
	updateUC updateAgentUseCase,
	toggleUC toggleAgentUseCase,
	deleteUC deleteAgentUseCase,
	testUC testAgentUseCase,
	maxUploadBytes int64,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:       createUC,
		listUC:         listUC,
		getUC:          getUC,
		updateUC:       updateUC,
		toggleUC:       toggleUC,
		deleteUC:       deleteUC,
		testUC:         testUC,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Create handles POST /agents
// @Summary Create an agent
// @Tags agents
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateAgentRequest true "Agent configuration"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /agents [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create agent", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(common.CurrentSession(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Agent created successfully")
}

// List handles GET /agents
// @Summary Agents of the office
// @Tags agents
// @Produce json
// @Security Bearer
// @Param status query string false "ativo, inativo or em_treinamento"
// @Param search query string false "Matches name or description"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Router /agents [get]
func (h *Handler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListAgentsQuery{
		Session:  common.CurrentSession(c),
		Status:   c.Query("status"),
		Search:   strings.TrimSpace(c.Query("search")),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Agents, result.TotalCount, result.Page, result.PageSize)
}

// Get handles GET /agents/:id
// @Summary Agent details and metrics
// @Tags agents
// @Produce json
// @Security Bearer
// @Param id path string true "Agent ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /agents/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	agentSID, err := parseAgentSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetAgentQuery{
		Session:  common.CurrentSession(c),
		AgentSID: agentSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update handles PATCH /agents/:id
// @Summary Update an agent
// @Tags agents
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Agent ID"
// @Param request body UpdateAgentRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /agents/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	agentSID, err := parseAgentSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(common.CurrentSession(c), agentSID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Agent updated successfully", result)
}

// Toggle handles POST /agents/:id/toggle
// @Summary Switch an agent between active and inactive
// @Tags agents
// @Produce json
// @Security Bearer
// @Param id path string true "Agent ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /agents/{id}/toggle [post]
func (h *Handler) Toggle(c *gin.Context) {
	agentSID, err := parseAgentSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.toggleUC.Execute(c.Request.Context(), usecases.ToggleAgentCommand{
		Session:  common.CurrentSession(c),
		AgentSID: agentSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Agent status changed", result)
}

// Delete handles DELETE /agents/:id
// @Summary Delete an agent
// @Tags agents
// @Security Bearer
// @Param id path string true "Agent ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /agents/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	agentSID, err := parseAgentSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteAgentCommand{
		Session:  common.CurrentSession(c),
		AgentSID: agentSID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Test handles POST /agents/:id/test
// @Summary Dry-run an agent on a sample file
// @Description Nothing is stored and the agent metrics are not touched.
// @Tags agents
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param id path string true "Agent ID"
// @Param file formData file true "Sample document"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /agents/{id}/test [post]
func (h *Handler) Test(c *gin.Context) {
	agentSID, err := parseAgentSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	file, err := common.ReadUpload(c, common.FileField, h.maxUploadBytes)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.testUC.Execute(c.Request.Context(), usecases.TestAgentCommand{
		Session:  common.CurrentSession(c),
		AgentSID: agentSID,
		File:     file,
	})
	if err != nil {
		h.logger.Warnw("agent test run failed", "agent_id", agentSID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseAgentSID(c *gin.Context) (string, error) {
	return utils.ParseSIDParam(c, "id", id.PrefixAgent, "agent")
}
