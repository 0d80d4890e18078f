package legalcase

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lexdoc-ai/lexdoc/internal/application/legalcase/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/legalcase/usecases"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/common"
	"github.com/lexdoc-ai/lexdoc/internal/shared/id"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"
)

type createCaseUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateCaseCommand) (*dto.CaseDTO, error)
}

type listCasesUseCase interface {
	Execute(ctx context.Context, query usecases.ListCasesQuery) (*usecases.ListCasesResult, error)
}

type getCaseUseCase interface {
	Execute(ctx context.Context, query usecases.GetCaseQuery) (*dto.CaseDetailDTO, error)
}

type updateCaseUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateCaseCommand) (*dto.CaseDTO, error)
}

type deleteCaseUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteCaseCommand) error
}

type Handler struct {
	createUC createCaseUseCase
	listUC   listCasesUseCase
	getUC    getCaseUseCase
	updateUC updateCaseUseCase
	deleteUC deleteCaseUseCase
	logger   logger.Interface
}

func NewHandler(
	createUC createCaseUseCase,
	listUC listCasesUseCase,
	getUC getCaseUseCase,
	updateUC updateCaseUseCase,
	deleteUC deleteCaseUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// Create handles POST /cases
// @Summary Open a case
// @Tags cases
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateCaseRequest true "Case data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /cases [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create case", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	cmd, err := req.ToCommand(common.CurrentSession(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Case created successfully")
}

// List handles GET /cases
// @Summary Cases of the office
// @Tags cases
// @Produce json
// @Security Bearer
// @Param status query string false "Case status"
// @Param area_direito query string false "Legal area"
// @Param search query string false "Matches title, client or process number"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param sort_by query string false "created_at, updated_at, title, client, next_deadline or status"
// @Param sort_order query string false "asc or desc"
// @Success 200 {object} utils.APIResponse
// @Router /cases [get]
func (h *Handler) List(c *gin.Context) {
	query := parseListCasesQuery(c, common.CurrentSession(c))

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Cases, result.TotalCount, result.Page, result.PageSize)
}

// Get handles GET /cases/:id
// @Summary Case with its documents and filings
// @Tags cases
// @Produce json
// @Security Bearer
// @Param id path string true "Case ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /cases/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	caseSID, err := utils.ParseSIDParam(c, "id", id.PrefixCase, "case")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetCaseQuery{
		Session: common.CurrentSession(c),
		CaseSID: caseSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update handles PATCH /cases/:id
// @Summary Update a case
// @Tags cases
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Case ID"
// @Param request body UpdateCaseRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /cases/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	caseSID, err := utils.ParseSIDParam(c, "id", id.PrefixCase, "case")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	update, err := req.ToUpdate()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateCaseCommand{
		Session: common.CurrentSession(c),
		CaseSID: caseSID,
		Update:  update,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Case updated successfully", result)
}

// Delete handles DELETE /cases/:id
// @Summary Delete a case
// @Description Linked documents and filings are kept and unlinked.
// @Tags cases
// @Security Bearer
// @Param id path string true "Case ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /cases/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	caseSID, err := utils.ParseSIDParam(c, "id", id.PrefixCase, "case")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteCaseCommand{
		Session: common.CurrentSession(c),
		CaseSID: caseSID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
