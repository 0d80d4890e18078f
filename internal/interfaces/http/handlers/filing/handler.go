package filing

import (
	"context"
	"mime"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lexdoc-ai/lexdoc/internal/application/filing/dto"
	"github.com/lexdoc-ai/lexdoc/internal/application/filing/usecases"
	casedto "github.com/lexdoc-ai/lexdoc/internal/application/legalcase/dto"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/http/handlers/common"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/id"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
	"github.com/lexdoc-ai/lexdoc/internal/shared/utils"
)

type listFilingsUseCase interface {
	Execute(ctx context.Context, query usecases.ListFilingsQuery) (*usecases.ListFilingsResult, error)
}

type getFilingUseCase interface {
	Execute(ctx context.Context, query usecases.GetFilingQuery) (*dto.FilingDTO, error)
}

type updateFilingUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateFilingCommand) (*dto.FilingDTO, error)
}

type deleteFilingUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteFilingCommand) error
}

type linkCaseUseCase interface {
	Execute(ctx context.Context, cmd usecases.LinkCaseCommand) (*dto.FilingDTO, error)
}

type createCaseFromFilingUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateCaseFromFilingCommand) (*casedto.CaseDTO, error)
}

type exportPDFUseCase interface {
	Execute(ctx context.Context, query usecases.ExportFilingPDFQuery) (*usecases.ExportFilingPDFResult, error)
}

type UpdateFilingRequest struct {
	Title   *string `json:"titulo" binding:"omitempty,min=2,max=300"`
	Content *string `json:"conteudo" binding:"omitempty,min=1"`
	Status  *string `json:"status" binding:"omitempty,oneof=rascunho em_revisao revisado aprovado enviado"`
}

type LinkCaseRequest struct {
	CaseID string `json:"caso_id" binding:"required"`
}

// CreateCaseRequest overrides what would otherwise be taken from the
// filing's origin document.
type CreateCaseRequest struct {
	Title  string `json:"titulo" binding:"max=200"`
	Client string `json:"cliente" binding:"max=200"`
	Area   string `json:"area_direito"`
}

type Handler struct {
	listUC       listFilingsUseCase
	getUC        getFilingUseCase
	updateUC     updateFilingUseCase
	deleteUC     deleteFilingUseCase
	linkCaseUC   linkCaseUseCase
	createCaseUC createCaseFromFilingUseCase
	exportPDFUC  exportPDFUseCase
	logger       logger.Interface
}

func NewHandler(
	listUC listFilingsUseCase,
	getUC getFilingUseCase,
	updateUC updateFilingUseCase,
	deleteUC deleteFilingUseCase,
	linkCaseUC linkCaseUseCase,
	createCaseUC createCaseFromFilingUseCase,
	exportPDFUC exportPDFUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		listUC:       listUC,
		getUC:        getUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		linkCaseUC:   linkCaseUC,
		createCaseUC: createCaseUC,
		exportPDFUC:  exportPDFUC,
		logger:       logger,
	}
}

// List handles GET /filings
// @Summary Filings of the office
// @Tags filings
// @Produce json
// @Security Bearer
// @Param status query string false "Filing status"
// @Param tipo_peca query string false "Filing type"
// @Param caso_id query string false "Only filings of this case"
// @Param search query string false "Matches the title"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param sort_by query string false "created_at, updated_at, title, legal_deadline or status"
// @Param sort_order query string false "asc or desc"
// @Success 200 {object} utils.APIResponse
// @Router /filings [get]
func (h *Handler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListFilingsQuery{
		Session:   common.CurrentSession(c),
		Status:    c.Query("status"),
		Type:      c.Query("tipo_peca"),
		CaseSID:   c.Query("caso_id"),
		Search:    strings.TrimSpace(c.Query("search")),
		Page:      p.Page,
		PageSize:  p.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Filings, result.TotalCount, result.Page, result.PageSize)
}

// Get handles GET /filings/:id
// @Summary Filing with its content
// @Tags filings
// @Produce json
// @Security Bearer
// @Param id path string true "Filing ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /filings/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	filingSID, err := parseFilingSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetFilingQuery{
		Session:   common.CurrentSession(c),
		FilingSID: filingSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update handles PATCH /filings/:id
// @Summary Edit a filing or move it through review
// @Tags filings
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Filing ID"
// @Param request body UpdateFilingRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /filings/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	filingSID, err := parseFilingSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateFilingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateFilingCommand{
		Session:   common.CurrentSession(c),
		FilingSID: filingSID,
		Title:     req.Title,
		Content:   req.Content,
		Status:    req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Filing updated successfully", result)
}

// Delete handles DELETE /filings/:id
// @Summary Delete a filing
// @Tags filings
// @Security Bearer
// @Param id path string true "Filing ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /filings/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	filingSID, err := parseFilingSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteFilingCommand{
		Session:   common.CurrentSession(c),
		FilingSID: filingSID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// LinkCase handles POST /filings/:id/link-case
// @Summary Attach a filing to an existing case
// @Tags filings
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Filing ID"
// @Param request body LinkCaseRequest true "Target case"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /filings/{id}/link-case [post]
func (h *Handler) LinkCase(c *gin.Context) {
	filingSID, err := parseFilingSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req LinkCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	if err := id.ValidatePrefix(req.CaseID, id.PrefixCase); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid case ID format, expected case_xxxxx", req.CaseID))
		return
	}

	result, err := h.linkCaseUC.Execute(c.Request.Context(), usecases.LinkCaseCommand{
		Session:   common.CurrentSession(c),
		FilingSID: filingSID,
		CaseSID:   req.CaseID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Filing linked to case", result)
}

// CreateCase handles POST /filings/:id/case
// @Summary Open a case from a filing
// @Description Parties, process number, claim value and deadline come from the origin document analysis.
// @Tags filings
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Filing ID"
// @Param request body CreateCaseRequest false "Overrides"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /filings/{id}/case [post]
func (h *Handler) CreateCase(c *gin.Context) {
	filingSID, err := parseFilingSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateCaseRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, utils.BindingError(err))
			return
		}
	}

	result, err := h.createCaseUC.Execute(c.Request.Context(), usecases.CreateCaseFromFilingCommand{
		Session:   common.CurrentSession(c),
		FilingSID: filingSID,
		Title:     req.Title,
		Client:    req.Client,
		Area:      req.Area,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Case created from filing")
}

// ExportPDF handles GET /filings/:id/pdf
// @Summary Download the filing as PDF
// @Tags filings
// @Produce application/pdf
// @Security Bearer
// @Param id path string true "Filing ID"
// @Success 200 {file} file
// @Failure 404 {object} utils.APIResponse
// @Router /filings/{id}/pdf [get]
func (h *Handler) ExportPDF(c *gin.Context) {
	filingSID, err := parseFilingSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.exportPDFUC.Execute(c.Request.Context(), usecases.ExportFilingPDFQuery{
		Session:   common.CurrentSession(c),
		FilingSID: filingSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": result.FileName}))
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func parseFilingSID(c *gin.Context) (string, error) {
	return utils.ParseSIDParam(c, "id", id.PrefixFiling, "filing")
}
